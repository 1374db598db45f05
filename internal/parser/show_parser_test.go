package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/testutil"
)

const testFallbackImage = "https://tinyurl.com/tv-missing"

func TestShowParser_FieldPassthrough(t *testing.T) {
	body := `[{"score":0.9,"show":{"id":42,"name":"X","summary":"S","image":{"medium":"http://i"}}}]`

	shows, err := NewShowParser(testFallbackImage).Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []models.Show{{ID: 42, Name: "X", Summary: "S", Image: "http://i"}}
	if !reflect.DeepEqual(shows, want) {
		t.Errorf("Parse() = %+v, want %+v", shows, want)
	}
}

func TestShowParser_ImageFallback(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "null image", body: `[{"show":{"id":1,"name":"A","summary":"s","image":null}}]`},
		{name: "missing image", body: `[{"show":{"id":1,"name":"A","summary":"s"}}]`},
		{name: "image without medium", body: `[{"show":{"id":1,"name":"A","summary":"s","image":{"original":"http://o"}}}]`},
		{name: "empty medium", body: `[{"show":{"id":1,"name":"A","summary":"s","image":{"medium":""}}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shows, err := NewShowParser(testFallbackImage).Parse(strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(shows) != 1 {
				t.Fatalf("Expected 1 show, got %d", len(shows))
			}
			if shows[0].Image != testFallbackImage {
				t.Errorf("Image = %q, want fallback %q", shows[0].Image, testFallbackImage)
			}
		})
	}
}

func TestShowParser_ImageNeverEmpty(t *testing.T) {
	body := testutil.GenerateSearchJSON([]testutil.ShowOptions{
		testutil.Show(1, "With image", "<p>one</p>", "http://img/1.jpg"),
		{ID: 2, Name: testutil.StringPtr("No image"), Summary: testutil.StringPtr("two")},
		testutil.Show(3, "Another", "three", "http://img/3.jpg"),
	})

	shows, err := NewShowParser("http://fallback/x.png").Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(shows) != 3 {
		t.Fatalf("Expected 3 shows, got %d", len(shows))
	}
	for _, s := range shows {
		if s.Image == "" {
			t.Errorf("show %d has an empty image", s.ID)
		}
	}
	if shows[1].Image != "http://fallback/x.png" {
		t.Errorf("Expected configured fallback for show 2, got %q", shows[1].Image)
	}
}

func TestShowParser_DefaultFallbackWhenUnset(t *testing.T) {
	shows, err := NewShowParser("").Parse(strings.NewReader(`[{"show":{"id":1,"name":"A","summary":"","image":null}}]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if shows[0].Image != testFallbackImage {
		t.Errorf("Image = %q, want %q", shows[0].Image, testFallbackImage)
	}
}

func TestShowParser_PreservesOrderAndMarkup(t *testing.T) {
	body := testutil.GenerateSearchJSON([]testutil.ShowOptions{
		testutil.Show(30, "Zeta", "<p>Last <b>alphabetically</b></p>", "http://i/30"),
		testutil.Show(10, "Alpha", "<p>First</p>", "http://i/10"),
		testutil.Show(20, "Mid", "<i>x</i>", "http://i/20"),
	})

	shows, err := NewShowParser(testFallbackImage).Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	gotIDs := []int64{shows[0].ID, shows[1].ID, shows[2].ID}
	if !reflect.DeepEqual(gotIDs, []int64{30, 10, 20}) {
		t.Errorf("Expected catalog order [30 10 20], got %v", gotIDs)
	}
	if shows[0].Summary != "<p>Last <b>alphabetically</b></p>" {
		t.Errorf("Expected summary markup verbatim, got %q", shows[0].Summary)
	}
}

func TestShowParser_NullSummaryBecomesEmpty(t *testing.T) {
	shows, err := NewShowParser(testFallbackImage).Parse(strings.NewReader(`[{"show":{"id":5,"name":"Quiet","summary":null,"image":null}}]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if shows[0].Summary != "" {
		t.Errorf("Summary = %q, want empty", shows[0].Summary)
	}
}

func TestShowParser_EmptyArray(t *testing.T) {
	shows, err := NewShowParser(testFallbackImage).Parse(strings.NewReader(`[]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if shows == nil || len(shows) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", shows)
	}
}

func TestShowParser_MalformedItems(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		index int
	}{
		{name: "missing name", body: `[{"show":{"id":1,"summary":"s","image":null}}]`, field: "name"},
		{name: "null name", body: `[{"show":{"id":1,"name":null,"summary":"s","image":null}}]`, field: "name"},
		{name: "missing id", body: `[{"show":{"name":"A","summary":"s","image":null}}]`, field: "id"},
		{name: "missing summary", body: `[{"show":{"id":1,"name":"A","image":null}}]`, field: "summary"},
		{name: "missing show object", body: `[{"score":1}]`, field: "show"},
		{
			name:  "second item bad",
			body:  `[{"show":{"id":1,"name":"A","summary":"s","image":null}},{"show":{"id":2,"summary":"s","image":null}}]`,
			field: "name",
			index: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shows, err := NewShowParser(testFallbackImage).Parse(strings.NewReader(tt.body))
			if err == nil {
				t.Fatalf("Expected error, got shows %+v", shows)
			}
			if shows != nil {
				t.Errorf("Expected no partial result, got %+v", shows)
			}

			var malformed *apperrors.MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Fatalf("Expected MalformedResponseError, got %T: %v", err, err)
			}
			if malformed.Field != tt.field {
				t.Errorf("Field = %q, want %q", malformed.Field, tt.field)
			}
			if malformed.Index != tt.index {
				t.Errorf("Index = %d, want %d", malformed.Index, tt.index)
			}
		})
	}
}

func TestShowParser_UndecodableBody(t *testing.T) {
	for _, body := range []string{
		`{"show":{}}`, `null`, `not json`, `[{"show":{"id":"abc"}}]`, `[{"show":{"id":1,"name":"A","summary":7}}]`,
		`[] {"oops": trailing`,
		`[{"show":{"id":1,"name":"A","summary":null}}] []`,
	} {
		_, err := NewShowParser(testFallbackImage).Parse(strings.NewReader(body))
		if !errors.Is(err, &apperrors.MalformedResponseError{}) {
			t.Errorf("body %q: expected MalformedResponseError, got %v", body, err)
		}
	}
}

func TestShowParser_WrongTypedSummaryIsInvalidNotMissing(t *testing.T) {
	_, err := NewShowParser(testFallbackImage).Parse(strings.NewReader(`[{"show":{"id":1,"name":"A","summary":7}}]`))

	var malformed *apperrors.MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedResponseError, got %v", err)
	}
	if malformed.Field != "summary" || malformed.Index != 0 || malformed.Err == nil {
		t.Errorf("got field %q index %d err %v, want summary at 0 with a cause", malformed.Field, malformed.Index, malformed.Err)
	}
	if strings.Contains(err.Error(), "missing") {
		t.Errorf("Error() = %q, must not report the field as missing", err.Error())
	}
}
