package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Belphemur/ShowFinder/internal/models"
)

// ServiceName is the fully qualified name of the catalog service.
const ServiceName = "showfinder.v1.CatalogService"

const (
	SearchShowsMethod  = "/" + ServiceName + "/SearchShows"
	ListEpisodesMethod = "/" + ServiceName + "/ListEpisodes"
)

// CatalogServiceServer is the server API for the catalog service. Requests
// carry the search term or show id as a StringValue; responses are lists of
// Structs holding the record fields.
type CatalogServiceServer interface {
	SearchShows(ctx context.Context, term *wrapperspb.StringValue) (*structpb.ListValue, error)
	ListEpisodes(ctx context.Context, showID *wrapperspb.StringValue) (*structpb.ListValue, error)
}

// RegisterCatalogServiceServer registers srv on s.
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&catalogServiceDesc, srv)
}

var catalogServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SearchShows", Handler: searchShowsHandler},
		{MethodName: "ListEpisodes", Handler: listEpisodesHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "showfinder/v1/catalog.proto",
}

func searchShowsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).SearchShows(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SearchShowsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).SearchShows(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listEpisodesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListEpisodes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListEpisodesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).ListEpisodes(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// CatalogServiceClient calls the catalog service and converts the responses
// back into records.
type CatalogServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCatalogServiceClient creates a client on top of cc.
func NewCatalogServiceClient(cc grpc.ClientConnInterface) *CatalogServiceClient {
	return &CatalogServiceClient{cc: cc}
}

// SearchShows invokes CatalogService/SearchShows.
func (c *CatalogServiceClient) SearchShows(ctx context.Context, term string, opts ...grpc.CallOption) ([]models.Show, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, SearchShowsMethod, wrapperspb.String(term), out, opts...); err != nil {
		return nil, err
	}
	return showsFromList(out)
}

// ListEpisodes invokes CatalogService/ListEpisodes.
func (c *CatalogServiceClient) ListEpisodes(ctx context.Context, showID string, opts ...grpc.CallOption) ([]models.Episode, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListEpisodesMethod, wrapperspb.String(showID), out, opts...); err != nil {
		return nil, err
	}
	return episodesFromList(out)
}
