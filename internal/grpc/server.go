package grpc

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Belphemur/ShowFinder/internal/client"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/reporting"
)

// server implements the CatalogServiceServer interface
type server struct {
	client client.Client
	logger zerolog.Logger
}

// NewServer creates a new gRPC server instance
func NewServer(c client.Client) CatalogServiceServer {
	return &server{
		client: c,
		logger: config.GetLogger(),
	}
}

// SearchShows implements CatalogServiceServer.SearchShows
func (s *server) SearchShows(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	term := req.GetValue()
	s.logger.Debug().Str("term", term).Msg("SearchShows called")

	shows, err := s.client.SearchShows(ctx, term)
	if err != nil {
		s.logger.Error().Err(err).Str("term", term).Msg("Failed to search shows")
		reporting.CaptureError(err, map[string]string{"method": SearchShowsMethod})
		return nil, toStatusError(err)
	}

	s.logger.Debug().Str("term", term).Int("count", len(shows)).Msg("SearchShows completed")
	return showsToList(shows), nil
}

// ListEpisodes implements CatalogServiceServer.ListEpisodes
func (s *server) ListEpisodes(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	showID := req.GetValue()
	s.logger.Debug().Str("show_id", showID).Msg("ListEpisodes called")

	episodes, err := s.client.ListEpisodes(ctx, showID)
	if err != nil {
		s.logger.Error().Err(err).Str("show_id", showID).Msg("Failed to list episodes")
		reporting.CaptureError(err, map[string]string{"method": ListEpisodesMethod})
		return nil, toStatusError(err)
	}

	s.logger.Debug().Str("show_id", showID).Int("count", len(episodes)).Msg("ListEpisodes completed")
	return episodesToList(episodes), nil
}
