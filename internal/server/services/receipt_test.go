package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ezilbeari/pennywise/internal/dbx"
	"github.com/ezilbeari/pennywise/internal/server/config"
	"github.com/ezilbeari/pennywise/internal/server/models"
	budgetsrepo "github.com/ezilbeari/pennywise/internal/server/repositories/budgets"
	refreshtokensrepo "github.com/ezilbeari/pennywise/internal/server/repositories/refreshtokens"
	settingsrepo "github.com/ezilbeari/pennywise/internal/server/repositories/settings"
	transactionsrepo "github.com/ezilbeari/pennywise/internal/server/repositories/transactions"
	usersrepo "github.com/ezilbeari/pennywise/internal/server/repositories/users"
)

type fakeTransactionsRepo struct {
	receiptUserID string
	receiptTxID   string
	receiptKey    string
	receiptErr    error
}

func (f *fakeTransactionsRepo) Create(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	return t, nil
}

func (f *fakeTransactionsRepo) ListByUser(ctx context.Context, userID string) ([]*models.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionsRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*models.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionsRepo) SummarizeSince(ctx context.Context, userID string, since time.Time) (float64, float64, error) {
	return 0, 0, nil
}

func (f *fakeTransactionsRepo) SetReceiptKey(ctx context.Context, userID, transactionID, key string) error {
	f.receiptUserID, f.receiptTxID, f.receiptKey = userID, transactionID, key
	return f.receiptErr
}

type fakeTxRepoManager struct {
	tx *fakeTransactionsRepo
}

func (m *fakeTxRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeTxRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return nil }
func (m *fakeTxRepoManager) RefreshTokens(dbx.DBTX) refreshtokensrepo.Repository {
	return nil
}
func (m *fakeTxRepoManager) Transactions(dbx.DBTX) transactionsrepo.Repository { return m.tx }
func (m *fakeTxRepoManager) Budgets(dbx.DBTX) budgetsrepo.Repository           { return nil }
func (m *fakeTxRepoManager) Settings(dbx.DBTX) settingsrepo.Repository         { return nil }

func stubPresignSeams(t *testing.T, putURL, getURL string, putErr, getErr error) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewClient := newS3ClientFromConfig
	origNewPresign := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewClient
		newS3PresignClient = origNewPresign
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return nil
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return nil
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if putErr != nil {
			return nil, putErr
		}
		return &v4.PresignedHTTPRequest{URL: putURL}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if getErr != nil {
			return nil, getErr
		}
		return &v4.PresignedHTTPRequest{URL: getURL}, nil
	}
}

func newReceiptService(rm *fakeTxRepoManager) *ReceiptService {
	cfg := &config.Config{
		S3RootUser:     "admin",
		S3RootPassword: "pw",
		S3Bucket:       "receipts",
		S3Region:       "us-east-1",
		S3BaseEndpoint: "http://127.0.0.1:9000/",
	}
	return NewReceiptService(nil, rm, cfg)
}

func TestPresignUpload_StoresKeyOnTransaction(t *testing.T) {
	stubPresignSeams(t, "http://signed/put", "http://signed/get", nil, nil)

	rm := &fakeTxRepoManager{tx: &fakeTransactionsRepo{}}
	s := newReceiptService(rm)

	key, url, err := s.PresignUpload(context.Background(), "u1", "tx1")
	if err != nil {
		t.Fatalf("PresignUpload error: %v", err)
	}
	if url != "http://signed/put" {
		t.Fatalf("unexpected url: %q", url)
	}
	if !strings.HasPrefix(key, "receipts/u1/") {
		t.Fatalf("key not namespaced to user: %q", key)
	}
	if rm.tx.receiptUserID != "u1" || rm.tx.receiptTxID != "tx1" || rm.tx.receiptKey != key {
		t.Fatalf("receipt key not recorded: %+v", rm.tx)
	}
}

func TestPresignUpload_PresignError(t *testing.T) {
	stubPresignSeams(t, "", "", errors.New("presign down"), nil)

	rm := &fakeTxRepoManager{tx: &fakeTransactionsRepo{}}
	s := newReceiptService(rm)

	if _, _, err := s.PresignUpload(context.Background(), "u1", "tx1"); err == nil {
		t.Fatal("expected error")
	}
	if rm.tx.receiptKey != "" {
		t.Fatalf("key must not be recorded on failure: %q", rm.tx.receiptKey)
	}
}

func TestPresignDownload(t *testing.T) {
	stubPresignSeams(t, "", "http://signed/get", nil, nil)

	s := newReceiptService(&fakeTxRepoManager{tx: &fakeTransactionsRepo{}})

	url, err := s.PresignDownload(context.Background(), "receipts/u1/2026/9/abc")
	if err != nil {
		t.Fatalf("PresignDownload error: %v", err)
	}
	if url != "http://signed/get" {
		t.Fatalf("unexpected url: %q", url)
	}
}
