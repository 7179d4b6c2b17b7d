package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openshelf/library-service/internal/model"
	"github.com/openshelf/library-service/pkg/validate"
)

func validBookRequest() model.CreateBookRequest {
	return model.CreateBookRequest{
		Title:           "Dune",
		Description:     "Desert planet epic",
		PublicationDate: model.Date{Time: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)},
		ISBN:            "9780441172719",
		PageCount:       412,
		AuthorID:        1,
		PublisherID:     2,
		CategoryID:      3,
	}
}

func TestCustomValidator_Book(t *testing.T) {
	t.Parallel()
	cv := validate.NewCustomValidator()

	tests := []struct {
		name    string
		mutate  func(*model.CreateBookRequest)
		wantErr bool
	}{
		{name: "ok", mutate: func(r *model.CreateBookRequest) {}},
		{
			name:    "future publication date",
			mutate:  func(r *model.CreateBookRequest) { r.PublicationDate = model.Date{Time: time.Now().Add(48 * time.Hour)} },
			wantErr: true,
		},
		{
			name:    "isbn with letters",
			mutate:  func(r *model.CreateBookRequest) { r.ISBN = "97804411727X" },
			wantErr: true,
		},
		{
			name:    "isbn too long",
			mutate:  func(r *model.CreateBookRequest) { r.ISBN = "97804411727199" },
			wantErr: true,
		},
		{
			name:    "page count out of range",
			mutate:  func(r *model.CreateBookRequest) { r.PageCount = 25001 },
			wantErr: true,
		},
		{
			name: "title too long",
			mutate: func(r *model.CreateBookRequest) {
				r.Title = "An Exceedingly Long Book Title"
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validBookRequest()
			tt.mutate(&req)
			err := cv.Validate(&req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCustomValidator_CatalogName(t *testing.T) {
	t.Parallel()
	cv := validate.NewCustomValidator()

	require.NoError(t, cv.Validate(&model.CatalogEntityRequest{Name: "Frank Herbert"}))
	require.NoError(t, cv.Validate(&model.CatalogEntityRequest{Name: "  Frank Herbert "}))
	require.Error(t, cv.Validate(&model.CatalogEntityRequest{Name: "   "}))
	require.Error(t, cv.Validate(&model.CatalogEntityRequest{Name: "R2D2"}))
	require.Error(t, cv.Validate(&model.CatalogEntityRequest{Name: "O'Brien"}))
	require.Error(t, cv.Validate(&model.CatalogEntityRequest{Name: "A name longer than allowed"}))
}
