package rest

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kekechi03/ero/internal/model"
	"github.com/kekechi03/ero/util"
	"github.com/pashagolub/pgxmock/v4"
)

func testVote(answer bool) model.Vote {
	return model.Vote{
		ID:      util.GenerateUUID(),
		ImageID: util.GenerateUUID(),
		UserID:  util.GenerateUUID(),
		Answer:  answer,
	}
}

func TestRecordVoteRepoYesVote(t *testing.T) {
	api, mock := newMockAPI(t)
	vote := testVote(true)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO votes").
		WithArgs(vote.ID, vote.ImageID, vote.UserID, true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SET yes_count = yes_count").
		WithArgs(vote.ImageID).
		WillReturnRows(pgxmock.NewRows([]string{"yes_count", "no_count"}).AddRow(3, 1))
	mock.ExpectCommit()

	counts, err := api.RecordVoteRepo(context.Background(), vote)
	if err != nil {
		t.Fatalf("RecordVoteRepo returned error %v", err)
	}
	if counts.ImageID != vote.ImageID {
		t.Errorf("ImageID = %v; want %v", counts.ImageID, vote.ImageID)
	}
	if counts.YesCount != 3 || counts.NoCount != 1 {
		t.Errorf("counts = %d/%d; want 3/1", counts.YesCount, counts.NoCount)
	}
	if counts.TotalVotes != 4 {
		t.Errorf("TotalVotes = %d; want 4", counts.TotalVotes)
	}
	if counts.YesPercentage != 75 {
		t.Errorf("YesPercentage = %d; want 75", counts.YesPercentage)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordVoteRepoNoVoteBumpsNoCount(t *testing.T) {
	api, mock := newMockAPI(t)
	vote := testVote(false)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO votes").
		WithArgs(vote.ID, vote.ImageID, vote.UserID, false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SET no_count = no_count").
		WithArgs(vote.ImageID).
		WillReturnRows(pgxmock.NewRows([]string{"yes_count", "no_count"}).AddRow(2, 5))
	mock.ExpectCommit()

	counts, err := api.RecordVoteRepo(context.Background(), vote)
	if err != nil {
		t.Fatalf("RecordVoteRepo returned error %v", err)
	}
	if counts.YesCount != 2 || counts.NoCount != 5 {
		t.Errorf("counts = %d/%d; want 2/5", counts.YesCount, counts.NoCount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// The counters returned to the caller are the post-increment values read
// back from the store, so votes that committed concurrently are included
// rather than lost to a stale in-memory copy.
func TestRecordVoteRepoCountsComeFromStore(t *testing.T) {
	api, mock := newMockAPI(t)
	vote := testVote(true)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO votes").
		WithArgs(vote.ID, vote.ImageID, vote.UserID, true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SET yes_count = yes_count").
		WithArgs(vote.ImageID).
		WillReturnRows(pgxmock.NewRows([]string{"yes_count", "no_count"}).AddRow(8, 7))
	mock.ExpectCommit()

	counts, err := api.RecordVoteRepo(context.Background(), vote)
	if err != nil {
		t.Fatalf("RecordVoteRepo returned error %v", err)
	}
	if counts.YesCount != 8 || counts.NoCount != 7 {
		t.Errorf("counts = %d/%d; want the store's 8/7", counts.YesCount, counts.NoCount)
	}
	if counts.TotalVotes != 15 {
		t.Errorf("TotalVotes = %d; want 15", counts.TotalVotes)
	}
	if counts.YesPercentage != model.Percentage(8, 15) {
		t.Errorf("YesPercentage = %d; want %d", counts.YesPercentage, model.Percentage(8, 15))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordVoteRepoDuplicateMapsToAlreadyVoted(t *testing.T) {
	api, mock := newMockAPI(t)
	vote := testVote(true)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO votes").
		WithArgs(vote.ID, vote.ImageID, vote.UserID, true).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
	mock.ExpectRollback()

	_, err := api.RecordVoteRepo(context.Background(), vote)
	if !errors.Is(err, ErrAlreadyVoted) {
		t.Fatalf("err = %v; want ErrAlreadyVoted", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRecordVoteRepoMissingImage(t *testing.T) {
	api, mock := newMockAPI(t)
	vote := testVote(true)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO votes").
		WithArgs(vote.ID, vote.ImageID, vote.UserID, true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SET yes_count = yes_count").
		WithArgs(vote.ImageID).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := api.RecordVoteRepo(context.Background(), vote)
	if !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("err = %v; want ErrImageNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
