package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renca-fc/league-console/internal/domain/player"
)

type stubRosterRepo struct {
	player.Repository

	updates  map[int64]player.Update
	uploaded string
}

func (s *stubRosterRepo) Update(_ context.Context, _ string, playerID int64, update player.Update) (player.Player, error) {
	if s.updates == nil {
		s.updates = map[int64]player.Update{}
	}
	s.updates[playerID] = update
	return player.Player{ID: playerID, Name: update.Name, DNI: update.DNI}, nil
}

func (s *stubRosterRepo) UploadRoster(_ context.Context, _ string, _ int64, filename string, _ io.Reader) (player.ImportSummary, error) {
	s.uploaded = filename
	return player.ImportSummary{Message: "ok", CreatedCount: 3}, nil
}

func TestRosterUpdateNormalizesDNI(t *testing.T) {
	repo := &stubRosterRepo{}
	svc := NewRosterService(repo)

	updated, err := svc.UpdatePlayer(context.Background(), operatorSession(), 5, player.Update{
		Name: "Pedro Soto",
		DNI:  " 12.345.678-k ",
	})
	require.NoError(t, err)

	assert.Equal(t, "12345678K", updated.DNI)
	assert.Equal(t, "12345678K", repo.updates[5].DNI)
}

func TestRosterUpdateRequiresName(t *testing.T) {
	svc := NewRosterService(&stubRosterRepo{})

	_, err := svc.UpdatePlayer(context.Background(), operatorSession(), 5, player.Update{DNI: "1-9"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRosterUploadAcceptsOnlyExcel(t *testing.T) {
	repo := &stubRosterRepo{}
	svc := NewRosterService(repo)

	_, err := svc.UploadRoster(context.Background(), operatorSession(), 4, "nomina.csv", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.uploaded)

	summary, err := svc.UploadRoster(context.Background(), operatorSession(), 4, "Nomina.XLSX", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, 3, summary.CreatedCount)
	assert.Equal(t, "Nomina.XLSX", repo.uploaded)
}
