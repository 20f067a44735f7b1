package books

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"edureuse/internal/models"
	"edureuse/internal/restapi"
)

func TestValidate(t *testing.T) {
	valid := models.ListingDraft{Name: "X", Author: "Y", Price: "10.00"}

	tests := []struct {
		name    string
		mutate  func(*models.ListingDraft)
		wantErr error
	}{
		{name: "valid", mutate: func(d *models.ListingDraft) {}},
		{name: "blank name", mutate: func(d *models.ListingDraft) { d.Name = "   " }, wantErr: ErrNameAuthorRequired},
		{name: "blank author", mutate: func(d *models.ListingDraft) { d.Author = "" }, wantErr: ErrNameAuthorRequired},
		{name: "unparsable price", mutate: func(d *models.ListingDraft) { d.Price = "free" }, wantErr: ErrInvalidPrice},
		{name: "zero price", mutate: func(d *models.ListingDraft) { d.Price = "0" }, wantErr: ErrInvalidPrice},
		{name: "negative price", mutate: func(d *models.ListingDraft) { d.Price = "-3" }, wantErr: ErrInvalidPrice},
		{
			// Both rules violated: the name/author message wins.
			name: "name checked before price",
			mutate: func(d *models.ListingDraft) {
				d.Name = ""
				d.Price = "free"
			},
			wantErr: ErrNameAuthorRequired,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			draft := valid
			tc.mutate(&draft)
			if err := Validate(draft); !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

type stubAPI struct {
	created models.ListingDraft
	calls   int
}

func (s *stubAPI) CreateBook(ctx context.Context, draft models.ListingDraft) (*models.Listing, error) {
	s.calls++
	s.created = draft
	return &models.Listing{ID: 1, Name: draft.Name, Author: draft.Author}, nil
}

func (s *stubAPI) UpdateBook(ctx context.Context, id int64, draft models.ListingDraft) (*models.Listing, error) {
	s.calls++
	return &models.Listing{ID: id, Name: draft.Name, Author: draft.Author}, nil
}

func (s *stubAPI) DeleteBook(ctx context.Context, id int64) error {
	s.calls++
	return nil
}

func TestInvalidDraftNeverReachesNetwork(t *testing.T) {
	api := &stubAPI{}
	editor := New(api)
	ctx := context.Background()

	if _, err := editor.Create(ctx, models.ListingDraft{Price: "10"}); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := editor.Update(ctx, 1, models.ListingDraft{Name: "X", Author: "Y", Price: "0"}); err == nil {
		t.Fatalf("expected validation error")
	}
	if api.calls != 0 {
		t.Fatalf("validation failures must block submission, got %d calls", api.calls)
	}
}

func TestCreateDefaultsCondition(t *testing.T) {
	api := &stubAPI{}
	editor := New(api)

	if _, err := editor.Create(context.Background(), models.ListingDraft{Name: " X ", Author: "Y", Price: "10"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if api.created.Condition != models.ConditionGood {
		t.Fatalf("condition = %q, want default good", api.created.Condition)
	}
	if api.created.Name != "X" {
		t.Fatalf("name not trimmed: %q", api.created.Name)
	}
}

// End-to-end through the real REST client: a successful create hands
// back the server-assigned id the caller navigates to.
func TestCreateReturnsServerAssignedID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/csrf/", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "tok", Path: "/"})
	})
	mux.HandleFunc("POST /api/books/", func(w http.ResponseWriter, r *http.Request) {
		var draft models.ListingDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			t.Errorf("decode draft: %v", err)
		}
		if draft.Name != "X" || draft.Author != "Y" || draft.Price != "10.00" {
			t.Errorf("unexpected draft: %+v", draft)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":42,"name":"X","author":"Y","price":"10.00"}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := restapi.New(restapi.Config{BaseURL: server.URL, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("restapi.New: %v", err)
	}

	editor := New(client)
	listing, err := editor.Create(context.Background(), models.ListingDraft{Name: "X", Author: "Y", Price: "10.00"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if listing.ID != 42 {
		t.Fatalf("id = %d, want 42", listing.ID)
	}
}
