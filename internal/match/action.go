package match

import (
	"encoding/json"
	"fmt"

	"github.com/openduel/duel-server-go/internal/game"
	"github.com/openduel/duel-server-go/internal/game/content"
)

// actionEnvelope is the wire form of a client action. Type selects the
// action; the other fields are read as that action needs them.
type actionEnvelope struct {
	Type     string `json:"type"`
	Wonder   int    `json:"wonder,omitempty"`
	Building int    `json:"building,omitempty"`
	Second   int    `json:"second,omitempty"`
	Token    int    `json:"token,omitempty"`
	Player   int    `json:"player,omitempty"`
}

// DecodeAction parses a client action payload. Setup dealing is not
// client-facing and cannot be decoded.
func DecodeAction(data []byte) (game.Action, error) {
	var env actionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse action: %w", err)
	}

	switch env.Type {
	case "pick_wonder":
		return game.PickWonder{Wonder: content.WonderID(env.Wonder)}, nil
	case "construct_building":
		return game.ConstructBuilding{Building: content.BuildingID(env.Building)}, nil
	case "discard_building":
		return game.DiscardBuilding{Building: content.BuildingID(env.Building)}, nil
	case "construct_wonder":
		return game.ConstructWonder{
			Wonder:   content.WonderID(env.Wonder),
			Building: content.BuildingID(env.Building),
		}, nil
	case "select_who_begins_the_next_age":
		if env.Player != int(game.Player1) && env.Player != int(game.Player2) {
			return nil, fmt.Errorf("unknown player %d", env.Player)
		}
		return game.SelectWhoBeginsTheNextAge{Player: game.Player(env.Player)}, nil
	case "pick_board_token":
		return game.PickBoardToken{Token: content.TokenID(env.Token)}, nil
	case "pick_random_token":
		return game.PickRandomToken{Token: content.TokenID(env.Token)}, nil
	case "pick_top_line_building":
		return game.PickTopLineBuilding{Building: content.BuildingID(env.Building)}, nil
	case "pick_discarded_building":
		return game.PickDiscardedBuilding{Building: content.BuildingID(env.Building)}, nil
	case "pick_returned_buildings":
		return game.PickReturnedBuildings{
			First:  content.BuildingID(env.Building),
			Second: content.BuildingID(env.Second),
		}, nil
	case "destruct_building":
		return game.DestructBuilding{Building: content.BuildingID(env.Building)}, nil
	case "resign":
		// The acting seat is filled in by the match.
		return game.Resign{}, nil
	default:
		return nil, fmt.Errorf("unknown action type %q", env.Type)
	}
}
