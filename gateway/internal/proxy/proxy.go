// Package proxy provides HTTP-to-gRPC proxy clients for backend services.
//
// Each service client holds a gRPC connection and exposes HTTP handler
// functions that translate JSON requests into gRPC calls and return
// enveloped JSON responses. The clients use a JSON codec so that
// proto-generated stubs are not required.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// ServiceConn represents a gRPC client connection to a backend service.
type ServiceConn struct {
	Name    string
	Addr    string
	Service string // name reported to the gRPC health service
	Conn    *grpc.ClientConn
	Health  healthpb.HealthClient
	Logger  *slog.Logger
}

// Dial establishes a gRPC connection to the backend service. Connections are
// lazy; an unreachable backend surfaces on the first call.
func Dial(name, addr, service string, creds credentials.TransportCredentials, logger *slog.Logger) (*ServiceConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("dial %s at %s: %w", name, addr, err)
	}

	logger.Info("connected to backend service", "service", name, "addr", addr)

	return &ServiceConn{
		Name:    name,
		Addr:    addr,
		Service: service,
		Conn:    conn,
		Health:  healthpb.NewHealthClient(conn),
		Logger:  logger,
	}, nil
}

// Close closes the underlying gRPC connection.
func (sc *ServiceConn) Close() error {
	if sc == nil || sc.Conn == nil {
		return nil
	}
	return sc.Conn.Close()
}

// Invoke calls a gRPC method on the backend service using the JSON codec.
// Returns an appropriate error if the connection is not established.
func (sc *ServiceConn) Invoke(ctx context.Context, method string, req, resp interface{}) error {
	if sc == nil || sc.Conn == nil {
		return status.Error(codes.Unavailable, "backend service not connected")
	}
	return sc.Conn.Invoke(ctx, method, req, resp, grpcCallOption())
}

// outgoingContext carries the caller's bearer token to the backend.
func outgoingContext(r *http.Request) context.Context {
	ctx := r.Context()
	if authz := r.Header.Get("Authorization"); authz != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", authz)
	}
	return ctx
}

// CheckHealth queries the gRPC health check endpoint of the backend service.
func (sc *ServiceConn) CheckHealth(ctx context.Context) error {
	if sc == nil || sc.Conn == nil {
		return errors.New("backend service not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := sc.Health.Check(ctx, &healthpb.HealthCheckRequest{
		Service: sc.Service,
	})
	if err != nil {
		return fmt.Errorf("health check %s: %w", sc.Name, err)
	}
	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("service %s not serving: %s", sc.Name, resp.Status)
	}
	return nil
}

// Envelope is the body of every successful API response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ErrorEnvelope is the body of every failed API response.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// readJSON reads and unmarshals a JSON request body into the provided value.
func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return fmt.Errorf("request body is empty")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// WriteJSON marshals the value as JSON and writes it to the response.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeSuccess writes data inside the success envelope.
func writeSuccess(w http.ResponseWriter, data interface{}, message string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// WriteError writes a JSON error envelope.
func WriteError(w http.ResponseWriter, statusCode int, msg string) {
	WriteJSON(w, statusCode, ErrorEnvelope{
		Error: ErrorBody{Code: statusCode, Message: msg},
	})
}

// grpcToHTTPStatus maps a gRPC status code to an HTTP status code.
func grpcToHTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// handleGRPCError writes an appropriate HTTP error response for a gRPC error.
func handleGRPCError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	st, ok := status.FromError(err)
	if !ok {
		logger.ErrorContext(r.Context(), "backend call failed", "error", err)
		WriteError(w, http.StatusBadGateway, "backend service unavailable")
		return
	}
	httpStatus := grpcToHTTPStatus(st.Code())
	level := slog.LevelError
	if httpStatus < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	logger.Log(r.Context(), level, "backend gRPC error",
		"code", st.Code().String(),
		"message", st.Message(),
		"http_status", httpStatus,
	)
	WriteError(w, httpStatus, st.Message())
}
