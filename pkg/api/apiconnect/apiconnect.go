// Package apiconnect wires the guestlist.v1 services to Connect handlers and
// clients.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/guestlist/pkg/api"
)

const (
	// GuestServiceName is the fully-qualified name of the GuestService.
	GuestServiceName = "guestlist.v1.GuestService"
	// AuthServiceName is the fully-qualified name of the AuthService.
	AuthServiceName = "guestlist.v1.AuthService"
)

// Procedure paths.
const (
	GuestServiceAddGuestProcedure     = "/" + GuestServiceName + "/AddGuest"
	GuestServiceListGuestsProcedure   = "/" + GuestServiceName + "/ListGuests"
	GuestServiceSelectGuestProcedure  = "/" + GuestServiceName + "/SelectGuest"
	GuestServiceGetSelectionProcedure = "/" + GuestServiceName + "/GetSelection"
	GuestServiceDeleteGuestProcedure  = "/" + GuestServiceName + "/DeleteGuest"
	AuthServiceLoginProcedure         = "/" + AuthServiceName + "/Login"
)

// GuestServiceHandler is implemented by the guest list service.
type GuestServiceHandler interface {
	AddGuest(context.Context, *connect.Request[api.AddGuestRequest]) (*connect.Response[api.AddGuestResponse], error)
	ListGuests(context.Context, *connect.Request[api.ListGuestsRequest]) (*connect.Response[api.ListGuestsResponse], error)
	SelectGuest(context.Context, *connect.Request[api.SelectGuestRequest]) (*connect.Response[api.SelectGuestResponse], error)
	GetSelection(context.Context, *connect.Request[api.GetSelectionRequest]) (*connect.Response[api.GetSelectionResponse], error)
	DeleteGuest(context.Context, *connect.Request[api.DeleteGuestRequest]) (*connect.Response[api.DeleteGuestResponse], error)
}

// AuthServiceHandler is implemented by the host login service.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
}

// NewGuestServiceHandler builds an HTTP handler for svc and returns the path
// to mount it on.
func NewGuestServiceHandler(svc GuestServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(GuestServiceAddGuestProcedure, connect.NewUnaryHandler(GuestServiceAddGuestProcedure, svc.AddGuest, opts...))
	mux.Handle(GuestServiceListGuestsProcedure, connect.NewUnaryHandler(GuestServiceListGuestsProcedure, svc.ListGuests, opts...))
	mux.Handle(GuestServiceSelectGuestProcedure, connect.NewUnaryHandler(GuestServiceSelectGuestProcedure, svc.SelectGuest, opts...))
	mux.Handle(GuestServiceGetSelectionProcedure, connect.NewUnaryHandler(GuestServiceGetSelectionProcedure, svc.GetSelection, opts...))
	mux.Handle(GuestServiceDeleteGuestProcedure, connect.NewUnaryHandler(GuestServiceDeleteGuestProcedure, svc.DeleteGuest, opts...))
	return "/" + GuestServiceName + "/", mux
}

// NewAuthServiceHandler builds an HTTP handler for svc and returns the path
// to mount it on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...))
	return "/" + AuthServiceName + "/", mux
}

func withCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{
		connect.WithCodec(api.NewCodec(api.CodecName)),
		connect.WithCodec(api.NewCodec(api.CharsetCodecName)),
	}, opts...)
}

// GuestServiceClient calls a remote GuestService.
type GuestServiceClient struct {
	addGuest     *connect.Client[api.AddGuestRequest, api.AddGuestResponse]
	listGuests   *connect.Client[api.ListGuestsRequest, api.ListGuestsResponse]
	selectGuest  *connect.Client[api.SelectGuestRequest, api.SelectGuestResponse]
	getSelection *connect.Client[api.GetSelectionRequest, api.GetSelectionResponse]
	deleteGuest  *connect.Client[api.DeleteGuestRequest, api.DeleteGuestResponse]
}

// NewGuestServiceClient creates a client for the service at baseURL
// (for example, http://localhost:8080).
func NewGuestServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *GuestServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &GuestServiceClient{
		addGuest:     connect.NewClient[api.AddGuestRequest, api.AddGuestResponse](httpClient, baseURL+GuestServiceAddGuestProcedure, opts...),
		listGuests:   connect.NewClient[api.ListGuestsRequest, api.ListGuestsResponse](httpClient, baseURL+GuestServiceListGuestsProcedure, opts...),
		selectGuest:  connect.NewClient[api.SelectGuestRequest, api.SelectGuestResponse](httpClient, baseURL+GuestServiceSelectGuestProcedure, opts...),
		getSelection: connect.NewClient[api.GetSelectionRequest, api.GetSelectionResponse](httpClient, baseURL+GuestServiceGetSelectionProcedure, opts...),
		deleteGuest:  connect.NewClient[api.DeleteGuestRequest, api.DeleteGuestResponse](httpClient, baseURL+GuestServiceDeleteGuestProcedure, opts...),
	}
}

func (c *GuestServiceClient) AddGuest(ctx context.Context, req *connect.Request[api.AddGuestRequest]) (*connect.Response[api.AddGuestResponse], error) {
	return c.addGuest.CallUnary(ctx, req)
}

func (c *GuestServiceClient) ListGuests(ctx context.Context, req *connect.Request[api.ListGuestsRequest]) (*connect.Response[api.ListGuestsResponse], error) {
	return c.listGuests.CallUnary(ctx, req)
}

func (c *GuestServiceClient) SelectGuest(ctx context.Context, req *connect.Request[api.SelectGuestRequest]) (*connect.Response[api.SelectGuestResponse], error) {
	return c.selectGuest.CallUnary(ctx, req)
}

func (c *GuestServiceClient) GetSelection(ctx context.Context, req *connect.Request[api.GetSelectionRequest]) (*connect.Response[api.GetSelectionResponse], error) {
	return c.getSelection.CallUnary(ctx, req)
}

func (c *GuestServiceClient) DeleteGuest(ctx context.Context, req *connect.Request[api.DeleteGuestRequest]) (*connect.Response[api.DeleteGuestResponse], error) {
	return c.deleteGuest.CallUnary(ctx, req)
}

// AuthServiceClient calls a remote AuthService.
type AuthServiceClient struct {
	login *connect.Client[api.LoginRequest, api.LoginResponse]
}

// NewAuthServiceClient creates a client for the service at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &AuthServiceClient{
		login: connect.NewClient[api.LoginRequest, api.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
	}
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}
