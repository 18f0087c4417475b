package advisor

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

// Field names of the BestMove request and response structs
const (
	FieldBoard              = "board"
	FieldFleet              = "fleet"
	FieldSimulations        = "simulations"
	FieldShotsPerSimulation = "shots_per_simulation"
	FieldRow                = "row"
	FieldCol                = "col"
	FieldMaxCount           = "max_count"
)

// BestMoveRequest asks for the most promising cell of an observed board.
// Zero Simulations or ShotsPerSimulation use the server defaults; a nil
// Fleet means the standard fleet.
type BestMoveRequest struct {
	Board              *core.Board
	Fleet              []int
	Simulations        int
	ShotsPerSimulation int
}

// BestMoveResponse carries the chosen cell and its simulated hit count. A
// MaxCount of zero means no simulation hit anything and the cell was drawn
// at random.
type BestMoveResponse struct {
	Cell     core.Cell
	MaxCount int
}

// EncodeRequest converts a request to its wire struct
func EncodeRequest(req BestMoveRequest) (*structpb.Struct, error) {
	if req.Board == nil {
		return nil, fmt.Errorf("request has no board: %w", core.ErrInvalidBoard)
	}
	fields := map[string]interface{}{
		FieldBoard: req.Board.Encode(),
	}
	if req.Fleet != nil {
		fleet := make([]interface{}, len(req.Fleet))
		for i, s := range req.Fleet {
			fleet[i] = s
		}
		fields[FieldFleet] = fleet
	}
	if req.Simulations > 0 {
		fields[FieldSimulations] = req.Simulations
	}
	if req.ShotsPerSimulation > 0 {
		fields[FieldShotsPerSimulation] = req.ShotsPerSimulation
	}
	return structpb.NewStruct(fields)
}

// DecodeRequest validates a wire struct and converts it to a request
func DecodeRequest(s *structpb.Struct) (BestMoveRequest, error) {
	var req BestMoveRequest
	fields := s.GetFields()

	raw, ok := fields[FieldBoard]
	if !ok {
		return req, fmt.Errorf("missing %q: %w", FieldBoard, core.ErrInvalidBoard)
	}
	text, ok := raw.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return req, fmt.Errorf("%q must be a string: %w", FieldBoard, core.ErrInvalidBoard)
	}
	board, err := core.ParseBoard(text.StringValue)
	if err != nil {
		return req, err
	}
	if board.Count(core.Simulated) > 0 {
		return req, fmt.Errorf("observed board may not contain simulated cells: %w", core.ErrInvalidBoard)
	}
	req.Board = board

	if v, ok := fields[FieldFleet]; ok {
		list := v.GetListValue()
		if list == nil {
			return req, fmt.Errorf("%q must be a list of numbers", FieldFleet)
		}
		req.Fleet = make([]int, len(list.GetValues()))
		for i, item := range list.GetValues() {
			n, err := toInt(item)
			if err != nil {
				return req, fmt.Errorf("%s[%d]: %w", FieldFleet, i, err)
			}
			req.Fleet[i] = n
		}
		if err := core.ValidateFleet(req.Fleet); err != nil {
			return req, err
		}
	}

	if req.Simulations, err = optionalCount(fields, FieldSimulations); err != nil {
		return req, err
	}
	if req.ShotsPerSimulation, err = optionalCount(fields, FieldShotsPerSimulation); err != nil {
		return req, err
	}
	return req, nil
}

// EncodeResponse converts a response to its wire struct
func EncodeResponse(resp BestMoveResponse) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldRow:      structpb.NewNumberValue(float64(resp.Cell.Row)),
		FieldCol:      structpb.NewNumberValue(float64(resp.Cell.Col)),
		FieldMaxCount: structpb.NewNumberValue(float64(resp.MaxCount)),
	}}
}

// DecodeResponse converts a wire struct to a response
func DecodeResponse(s *structpb.Struct) (BestMoveResponse, error) {
	var resp BestMoveResponse
	fields := s.GetFields()
	var vals [3]int
	for i, name := range []string{FieldRow, FieldCol, FieldMaxCount} {
		v, ok := fields[name]
		if !ok {
			return resp, fmt.Errorf("response is missing %q", name)
		}
		n, err := toInt(v)
		if err != nil {
			return resp, fmt.Errorf("%s: %w", name, err)
		}
		vals[i] = n
	}
	resp.Cell = core.NewCell(vals[0], vals[1])
	resp.MaxCount = vals[2]
	if !resp.Cell.IsValid() {
		return resp, fmt.Errorf("response %s: %w", resp.Cell, core.ErrInvalidCell)
	}
	return resp, nil
}

func optionalCount(fields map[string]*structpb.Value, name string) (int, error) {
	v, ok := fields[name]
	if !ok {
		return 0, nil
	}
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", name, n)
	}
	return n, nil
}

func toInt(v *structpb.Value) (int, error) {
	num, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("expected a number")
	}
	f := num.NumberValue
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("expected an integer, got %v", f)
	}
	return int(f), nil
}
