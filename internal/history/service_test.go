package history_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kritsw/bankconv/internal/history"
)

func TestService_Record(t *testing.T) {
	type testCase struct {
		name      string
		params    history.RecordParams
		setupMock func(m *history.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: history.RecordParams{
				Filename:          "SCB_jan.xlsx",
				OutputFilename:    "SCB_jan_converted.txt",
				BankCode:          "SCB",
				TotalRows:         42,
				ValidTransactions: 40,
				InvalidRows:       []int{7, 19},
			},
			setupMock: func(m *history.MockRepository) {
				m.EXPECT().
					CreateConversion(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *history.Conversion) error {
						c.ID = uuid.New()
						c.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			params: history.RecordParams{
				Filename: "x.csv",
			},
			setupMock: func(m *history.MockRepository) {
				m.EXPECT().
					CreateConversion(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := history.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := history.NewService(repo)
			got, err := svc.Record(context.Background(), tt.params)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, tt.params.Filename, got.Filename)
			assert.Equal(t, tt.params.InvalidRows, got.InvalidRows)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := []*history.Conversion{
		{ID: uuid.New(), Filename: "KTB_feb.csv", BankCode: "KTB"},
	}

	repo := history.NewMockRepository(ctrl)
	repo.EXPECT().
		ListConversions(gomock.Any(), history.ListFilter{Limit: 10}).
		Return(want, nil)

	svc := history.NewService(repo)

	got, err := svc.List(context.Background(), history.ListFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
