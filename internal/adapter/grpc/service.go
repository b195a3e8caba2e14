package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const serviceName = "remitflow.v1.TransferService"

// Full method names, as seen by interceptors
const (
	MethodValidateCorridor = "/" + serviceName + "/ValidateCorridor"
	MethodListDestinations = "/" + serviceName + "/ListDestinations"
	MethodGetQuote         = "/" + serviceName + "/GetQuote"
	MethodSendMoney        = "/" + serviceName + "/SendMoney"
)

// TransferServiceServer is the server API for TransferService
type TransferServiceServer interface {
	ValidateCorridor(context.Context, *ValidateCorridorRequest) (*ValidateCorridorResponse, error)
	ListDestinations(context.Context, *ListDestinationsRequest) (*ListDestinationsResponse, error)
	GetQuote(context.Context, *GetQuoteRequest) (*GetQuoteResponse, error)
	SendMoney(context.Context, *SendMoneyRequest) (*SendMoneyResponse, error)
}

// RegisterTransferServiceServer registers srv on s
func RegisterTransferServiceServer(s grpc.ServiceRegistrar, srv TransferServiceServer) {
	s.RegisterService(&TransferService_ServiceDesc, srv)
}

func _TransferService_ValidateCorridor_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ValidateCorridorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransferServiceServer).ValidateCorridor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodValidateCorridor}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TransferServiceServer).ValidateCorridor(ctx, req.(*ValidateCorridorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TransferService_ListDestinations_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListDestinationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransferServiceServer).ListDestinations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodListDestinations}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TransferServiceServer).ListDestinations(ctx, req.(*ListDestinationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TransferService_GetQuote_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetQuoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransferServiceServer).GetQuote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodGetQuote}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TransferServiceServer).GetQuote(ctx, req.(*GetQuoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TransferService_SendMoney_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendMoneyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransferServiceServer).SendMoney(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodSendMoney}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TransferServiceServer).SendMoney(ctx, req.(*SendMoneyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TransferService_ServiceDesc is the grpc.ServiceDesc for TransferService
// No file descriptor is registered for Metadata: reflection lists the service
// by name but cannot describe its methods or messages.
var TransferService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*TransferServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ValidateCorridor", Handler: _TransferService_ValidateCorridor_Handler},
		{MethodName: "ListDestinations", Handler: _TransferService_ListDestinations_Handler},
		{MethodName: "GetQuote", Handler: _TransferService_GetQuote_Handler},
		{MethodName: "SendMoney", Handler: _TransferService_SendMoney_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "remitflow/v1/transfer.proto",
}

// TransferServiceClient is the client API for TransferService
// Calls use the JSON codec unless the caller overrides the content-subtype
type TransferServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTransferServiceClient creates a client on an established connection
func NewTransferServiceClient(cc grpc.ClientConnInterface) *TransferServiceClient {
	return &TransferServiceClient{cc: cc}
}

func (c *TransferServiceClient) ValidateCorridor(ctx context.Context, in *ValidateCorridorRequest, opts ...grpc.CallOption) (*ValidateCorridorResponse, error) {
	out := new(ValidateCorridorResponse)
	if err := c.invoke(ctx, MethodValidateCorridor, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TransferServiceClient) ListDestinations(ctx context.Context, in *ListDestinationsRequest, opts ...grpc.CallOption) (*ListDestinationsResponse, error) {
	out := new(ListDestinationsResponse)
	if err := c.invoke(ctx, MethodListDestinations, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TransferServiceClient) GetQuote(ctx context.Context, in *GetQuoteRequest, opts ...grpc.CallOption) (*GetQuoteResponse, error) {
	out := new(GetQuoteResponse)
	if err := c.invoke(ctx, MethodGetQuote, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TransferServiceClient) SendMoney(ctx context.Context, in *SendMoneyRequest, opts ...grpc.CallOption) (*SendMoneyResponse, error) {
	out := new(SendMoneyResponse)
	if err := c.invoke(ctx, MethodSendMoney, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TransferServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}
