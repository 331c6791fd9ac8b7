package grpc_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/Kishanjee7/finhealth/internal/application/dto"
	"github.com/Kishanjee7/finhealth/internal/application/usecase"
	"github.com/Kishanjee7/finhealth/internal/domain/service"
	"github.com/Kishanjee7/finhealth/internal/infrastructure/benchmark"
	"github.com/Kishanjee7/finhealth/internal/infrastructure/i18n"
	grpcapi "github.com/Kishanjee7/finhealth/internal/presentation/grpc"
	"github.com/Kishanjee7/finhealth/pkg/testutil"
	"github.com/Kishanjee7/finhealth/pkg/tlsutil"
)

func startServer(t *testing.T) *grpc.ClientConn {
	t.Helper()
	return startServerWith(t, grpcapi.ServerConfig{ServiceName: "finhealth"}, insecure.NewCredentials())
}

func startServerWith(t *testing.T, cfg grpcapi.ServerConfig, creds credentials.TransportCredentials) *grpc.ClientConn {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	table, err := benchmark.EmbeddedSource{}.Load(context.Background())
	require.NoError(t, err)
	catalog, err := i18n.Load()
	require.NoError(t, err)

	engine := service.NewAnalysisOrchestrator(
		service.NewMetricsCalculator(),
		service.NewBenchmarkComparator(table),
		service.NewHealthScoreAggregator(service.DefaultHealthWeights()),
		service.NewRiskAssessor(service.DefaultRiskThresholds()),
		service.NewCreditScorer(service.DefaultCreditPolicy()),
		service.NewForecastEngine(service.DefaultForecastPeriods),
	)
	obs := usecase.Observer{
		Logger: logger,
		Now:    func() time.Time { return testutil.FixedNow },
	}
	handler := grpcapi.NewAnalysisHandler(usecase.Set{
		FullAnalysis:      usecase.NewRunFullAnalysis(engine, nil, catalog, obs),
		ComputeMetrics:    usecase.NewComputeMetrics(engine, catalog, obs),
		CompareBenchmarks: usecase.NewCompareBenchmarks(engine, catalog, obs),
		AssessRisk:        usecase.NewAssessRisk(engine, catalog, obs),
		ScoreCredit:       usecase.NewScoreCredit(engine, catalog, obs),
		Forecast:          usecase.NewForecast(engine, obs),
		ListIndustries:    usecase.NewListIndustries(engine),
	}, logger)

	srv, err := grpcapi.NewServer(handler, logger, cfg)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.ServeListener(lis) }()
	t.Cleanup(srv.GracefulStop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(creds),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func invoke(t *testing.T, conn *grpc.ClientConn, method, body string, out any) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	in := json.RawMessage(body)
	return conn.Invoke(ctx, "/"+grpcapi.ServiceName+"/"+method, &in, out, grpc.CallContentSubtype("json"))
}

func TestRunFullAnalysis(t *testing.T) {
	conn := startServer(t)

	var resp dto.FullAnalysisResponse
	require.NoError(t, invoke(t, conn, "RunFullAnalysis", testutil.ScenarioRequestJSON, &resp))

	assert.Equal(t, "services", resp.Industry)
	assert.Equal(t, "Good", resp.HealthScore.Rating)
	assert.Equal(t, 701, resp.CreditScore.Score)
	assert.Equal(t, "B", resp.CreditScore.Rating)
}

func TestNarrowMethods(t *testing.T) {
	conn := startServer(t)

	t.Run("ComputeMetrics", func(t *testing.T) {
		var resp dto.MetricsResponse
		require.NoError(t, invoke(t, conn, "ComputeMetrics", testutil.ScenarioRequestJSON, &resp))
		assert.NotEmpty(t, resp.Metrics)
	})

	t.Run("CompareBenchmarks", func(t *testing.T) {
		var resp dto.BenchmarkResponse
		require.NoError(t, invoke(t, conn, "CompareBenchmarks", testutil.ScenarioRequestJSON, &resp))
		assert.Equal(t, "above_median", resp.Benchmark.OverallRanking)
	})

	t.Run("AssessRisk", func(t *testing.T) {
		var resp dto.RiskResponse
		require.NoError(t, invoke(t, conn, "AssessRisk", testutil.ScenarioRequestJSON, &resp))
		require.Len(t, resp.Risks, 1)
		assert.Equal(t, "SOL001", resp.Risks[0].ID)
	})

	t.Run("ScoreCredit", func(t *testing.T) {
		var resp dto.CreditScoreResult
		require.NoError(t, invoke(t, conn, "ScoreCredit", testutil.ScenarioRequestJSON, &resp))
		assert.Equal(t, 701, resp.CreditScore.Score)
	})

	t.Run("ListIndustries", func(t *testing.T) {
		var resp dto.IndustriesResponse
		require.NoError(t, invoke(t, conn, "ListIndustries", `{}`, &resp))
		assert.Len(t, resp.Industries, 8)
	})
}

func TestErrorCodes(t *testing.T) {
	conn := startServer(t)

	t.Run("validation failure", func(t *testing.T) {
		var resp dto.FullAnalysisResponse
		err := invoke(t, conn, "RunFullAnalysis", testutil.IncompleteRequestJSON, &resp)
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, status.Convert(err).Message(), "income_statement.revenue")
	})

	t.Run("short history", func(t *testing.T) {
		var resp dto.ForecastResponse
		err := invoke(t, conn, "Forecast", `{"historical_data": {"revenue": [{"period": 1, "value": 100}]}}`, &resp)
		require.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})

	t.Run("forecast", func(t *testing.T) {
		var resp dto.ForecastResponse
		require.NoError(t, invoke(t, conn, "Forecast", testutil.LinearHistoryJSON, &resp))
		assert.Len(t, resp.Forecast.Revenue.Points, 3)
	})
}

func TestHealthService(t *testing.T) {
	conn := startServer(t)
	client := healthpb.NewHealthClient(conn)

	for _, name := range []string{"finhealth", grpcapi.ServiceName} {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}
}

func TestUnimplemented(t *testing.T) {
	var srv grpcapi.UnimplementedAnalysisServiceServer

	_, err := srv.RunFullAnalysis(context.Background(), &dto.AnalysisRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestServer_TLS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, tlsutil.GenerateSelfSignedCert([]string{"localhost", "127.0.0.1"}, dir))

	clientCfg, err := tlsutil.ClientTLSConfig(filepath.Join(dir, "cert.pem"))
	require.NoError(t, err)
	clientCfg.ServerName = "localhost"

	conn := startServerWith(t, grpcapi.ServerConfig{
		ServiceName: "finhealth",
		TLSCertFile: filepath.Join(dir, "cert.pem"),
		TLSKeyFile:  filepath.Join(dir, "key.pem"),
	}, credentials.NewTLS(clientCfg))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: grpcapi.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	var industries dto.IndustriesResponse
	require.NoError(t, invoke(t, conn, "ListIndustries", `{}`, &industries))
	assert.NotEmpty(t, industries.Industries)
}

func TestNewServer_MissingTLSFiles(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := grpcapi.NewServer(grpcapi.NewAnalysisHandler(usecase.Set{}, logger), logger, grpcapi.ServerConfig{
		TLSCertFile: filepath.Join(dir, "cert.pem"),
		TLSKeyFile:  filepath.Join(dir, "key.pem"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load gRPC TLS credentials")
}
