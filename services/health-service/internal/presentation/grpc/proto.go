package grpc

// proto.go hand-writes the service descriptor for
// ventureguard.health.v1.BusinessHealthService. Messages travel with the JSON
// codec registered in json_codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "ventureguard.health.v1.BusinessHealthService"

// Full method names, as clients address them.
const (
	AnalyzeBusinessHealthMethod = "/" + ServiceName + "/AnalyzeBusinessHealth"
	GetDemoAnalysisMethod       = "/" + ServiceName + "/GetDemoAnalysis"
)

// BusinessHealthServiceServer is the server API for BusinessHealthService.
type BusinessHealthServiceServer interface {
	AnalyzeBusinessHealth(context.Context, *AnalyzeBusinessHealthRequest) (*AnalyzeBusinessHealthResponse, error)
	GetDemoAnalysis(context.Context, *GetDemoAnalysisRequest) (*AnalyzeBusinessHealthResponse, error)
	mustEmbedUnimplementedBusinessHealthServiceServer()
}

// UnimplementedBusinessHealthServiceServer provides forward-compatible default implementations.
type UnimplementedBusinessHealthServiceServer struct{}

func (UnimplementedBusinessHealthServiceServer) AnalyzeBusinessHealth(context.Context, *AnalyzeBusinessHealthRequest) (*AnalyzeBusinessHealthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeBusinessHealth not implemented")
}
func (UnimplementedBusinessHealthServiceServer) GetDemoAnalysis(context.Context, *GetDemoAnalysisRequest) (*AnalyzeBusinessHealthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDemoAnalysis not implemented")
}
func (UnimplementedBusinessHealthServiceServer) mustEmbedUnimplementedBusinessHealthServiceServer() {}

// RegisterBusinessHealthServiceServer registers the BusinessHealthServiceServer with the gRPC server.
func RegisterBusinessHealthServiceServer(s grpclib.ServiceRegistrar, srv BusinessHealthServiceServer) {
	s.RegisterService(&_BusinessHealthService_serviceDesc, srv)
}

var _BusinessHealthService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BusinessHealthServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "AnalyzeBusinessHealth", Handler: _BusinessHealthService_AnalyzeBusinessHealth_Handler},
		{MethodName: "GetDemoAnalysis", Handler: _BusinessHealthService_GetDemoAnalysis_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _BusinessHealthService_AnalyzeBusinessHealth_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(AnalyzeBusinessHealthRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BusinessHealthServiceServer).AnalyzeBusinessHealth(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: AnalyzeBusinessHealthMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BusinessHealthServiceServer).AnalyzeBusinessHealth(ctx, req.(*AnalyzeBusinessHealthRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _BusinessHealthService_GetDemoAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetDemoAnalysisRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BusinessHealthServiceServer).GetDemoAnalysis(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: GetDemoAnalysisMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BusinessHealthServiceServer).GetDemoAnalysis(ctx, req.(*GetDemoAnalysisRequest))
	}
	return interceptor(ctx, req, info, handler)
}
