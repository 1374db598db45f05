package grpc

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Belphemur/ShowFinder/internal/models"
)

// convertShowToStruct converts a models.Show to a Struct with id, name, summary and image
func convertShowToStruct(show models.Show) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":      structpb.NewNumberValue(float64(show.ID)),
		"name":    structpb.NewStringValue(show.Name),
		"summary": structpb.NewStringValue(show.Summary),
		"image":   structpb.NewStringValue(show.Image),
	}}
}

// convertEpisodeToStruct converts a models.Episode to a Struct with id, name, season and number
func convertEpisodeToStruct(episode models.Episode) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":     structpb.NewNumberValue(float64(episode.ID)),
		"name":   structpb.NewStringValue(episode.Name),
		"season": structpb.NewNumberValue(float64(episode.Season)),
		"number": structpb.NewNumberValue(float64(episode.Number)),
	}}
}

func showsToList(shows []models.Show) *structpb.ListValue {
	values := make([]*structpb.Value, len(shows))
	for i, show := range shows {
		values[i] = structpb.NewStructValue(convertShowToStruct(show))
	}
	return &structpb.ListValue{Values: values}
}

func episodesToList(episodes []models.Episode) *structpb.ListValue {
	values := make([]*structpb.Value, len(episodes))
	for i, episode := range episodes {
		values[i] = structpb.NewStructValue(convertEpisodeToStruct(episode))
	}
	return &structpb.ListValue{Values: values}
}

func showsFromList(list *structpb.ListValue) ([]models.Show, error) {
	shows := make([]models.Show, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		fields, err := structFields(v, i)
		if err != nil {
			return nil, err
		}
		shows = append(shows, models.Show{
			ID:      int64(fields["id"].GetNumberValue()),
			Name:    fields["name"].GetStringValue(),
			Summary: fields["summary"].GetStringValue(),
			Image:   fields["image"].GetStringValue(),
		})
	}
	return shows, nil
}

func episodesFromList(list *structpb.ListValue) ([]models.Episode, error) {
	episodes := make([]models.Episode, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		fields, err := structFields(v, i)
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, models.Episode{
			ID:     int64(fields["id"].GetNumberValue()),
			Name:   fields["name"].GetStringValue(),
			Season: int(fields["season"].GetNumberValue()),
			Number: int(fields["number"].GetNumberValue()),
		})
	}
	return episodes, nil
}

func structFields(v *structpb.Value, index int) (map[string]*structpb.Value, error) {
	s := v.GetStructValue()
	if s == nil {
		return nil, fmt.Errorf("list element %d is not a struct", index)
	}
	return s.GetFields(), nil
}
