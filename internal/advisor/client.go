package advisor

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls the Advisor service over a gRPC connection
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// BestMoveRaw sends a wire struct as is
func (c *Client) BestMoveRaw(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BestMoveMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// BestMove asks the advisor for the most promising cell of req.Board
func (c *Client) BestMove(ctx context.Context, req BestMoveRequest, opts ...grpc.CallOption) (BestMoveResponse, error) {
	in, err := EncodeRequest(req)
	if err != nil {
		return BestMoveResponse{}, err
	}
	out, err := c.BestMoveRaw(ctx, in, opts...)
	if err != nil {
		return BestMoveResponse{}, err
	}
	resp, err := DecodeResponse(out)
	if err != nil {
		return BestMoveResponse{}, fmt.Errorf("decode best move: %w", err)
	}
	return resp, nil
}
