package grpc

// proto.go defines the server interface of finhealth.analysis.v1.AnalysisService.
// Messages are the application DTOs carried by the JSON codec, so no
// generated protobuf types are involved.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Kishanjee7/finhealth/internal/application/dto"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "finhealth.analysis.v1.AnalysisService"

// ListIndustriesRequest is the empty request of ListIndustries.
type ListIndustriesRequest struct{}

// AnalysisServiceServer is the server API for AnalysisService.
type AnalysisServiceServer interface {
	RunFullAnalysis(context.Context, *dto.AnalysisRequest) (*dto.FullAnalysisResponse, error)
	ComputeMetrics(context.Context, *dto.AnalysisRequest) (*dto.MetricsResponse, error)
	CompareBenchmarks(context.Context, *dto.AnalysisRequest) (*dto.BenchmarkResponse, error)
	AssessRisk(context.Context, *dto.AnalysisRequest) (*dto.RiskResponse, error)
	ScoreCredit(context.Context, *dto.AnalysisRequest) (*dto.CreditScoreResult, error)
	Forecast(context.Context, *dto.ForecastRequest) (*dto.ForecastResponse, error)
	ListIndustries(context.Context, *ListIndustriesRequest) (*dto.IndustriesResponse, error)
	mustEmbedUnimplementedAnalysisServiceServer()
}

// UnimplementedAnalysisServiceServer provides forward-compatible default implementations.
type UnimplementedAnalysisServiceServer struct{}

func (UnimplementedAnalysisServiceServer) RunFullAnalysis(context.Context, *dto.AnalysisRequest) (*dto.FullAnalysisResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunFullAnalysis not implemented")
}
func (UnimplementedAnalysisServiceServer) ComputeMetrics(context.Context, *dto.AnalysisRequest) (*dto.MetricsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeMetrics not implemented")
}
func (UnimplementedAnalysisServiceServer) CompareBenchmarks(context.Context, *dto.AnalysisRequest) (*dto.BenchmarkResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareBenchmarks not implemented")
}
func (UnimplementedAnalysisServiceServer) AssessRisk(context.Context, *dto.AnalysisRequest) (*dto.RiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssessRisk not implemented")
}
func (UnimplementedAnalysisServiceServer) ScoreCredit(context.Context, *dto.AnalysisRequest) (*dto.CreditScoreResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreCredit not implemented")
}
func (UnimplementedAnalysisServiceServer) Forecast(context.Context, *dto.ForecastRequest) (*dto.ForecastResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Forecast not implemented")
}
func (UnimplementedAnalysisServiceServer) ListIndustries(context.Context, *ListIndustriesRequest) (*dto.IndustriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListIndustries not implemented")
}
func (UnimplementedAnalysisServiceServer) mustEmbedUnimplementedAnalysisServiceServer() {}

// RegisterAnalysisServiceServer registers the AnalysisServiceServer with the gRPC server.
func RegisterAnalysisServiceServer(s grpclib.ServiceRegistrar, srv AnalysisServiceServer) {
	s.RegisterService(&analysisServiceDesc, srv)
}

var analysisServiceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AnalysisServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "RunFullAnalysis", Handler: unaryHandler("RunFullAnalysis", AnalysisServiceServer.RunFullAnalysis)},
		{MethodName: "ComputeMetrics", Handler: unaryHandler("ComputeMetrics", AnalysisServiceServer.ComputeMetrics)},
		{MethodName: "CompareBenchmarks", Handler: unaryHandler("CompareBenchmarks", AnalysisServiceServer.CompareBenchmarks)},
		{MethodName: "AssessRisk", Handler: unaryHandler("AssessRisk", AnalysisServiceServer.AssessRisk)},
		{MethodName: "ScoreCredit", Handler: unaryHandler("ScoreCredit", AnalysisServiceServer.ScoreCredit)},
		{MethodName: "Forecast", Handler: unaryHandler("Forecast", AnalysisServiceServer.Forecast)},
		{MethodName: "ListIndustries", Handler: unaryHandler("ListIndustries", AnalysisServiceServer.ListIndustries)},
	},
	Streams: []grpclib.StreamDesc{},
}

// unaryHandler adapts a typed server method to the grpc method handler
// signature, decoding the request and running the interceptor chain.
func unaryHandler[Req, Resp any](
	method string,
	call func(AnalysisServiceServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpclib.UnaryServerInterceptor) (any, error) {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AnalysisServiceServer), ctx, in)
		}
		info := &grpclib.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AnalysisServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
