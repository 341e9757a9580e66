package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	appconfig "namematch-backend/internal/config"
	"namematch-backend/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CatalogStore is the storage surface for seeding the name catalog.
type CatalogStore interface {
	Insert(ctx context.Context, name *models.BabyName) error
}

// CatalogService imports baby-name reference data from CSV files, read from
// the local filesystem or from S3.
type CatalogService struct {
	store    CatalogStore
	s3Client *s3.Client
}

// NewCatalogService creates a catalog service. The S3 client is only built
// when a region is configured; local-file imports need neither.
func NewCatalogService(store CatalogStore, awsCfg appconfig.AWSConfig) (*CatalogService, error) {
	svc := &CatalogService{store: store}
	if awsCfg.Region == "" {
		return svc, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(awsCfg.Region),
	}
	if awsCfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsCfg.AccessKey, awsCfg.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	svc.s3Client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if awsCfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(awsCfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return svc, nil
}

// Import reads the CSV at source and inserts its rows. Source is either a
// local path or an s3://bucket/key URI. Returns the number of rows imported.
func (s *CatalogService) Import(ctx context.Context, source string) (int, error) {
	reader, err := s.open(ctx, source)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	return s.importCSV(ctx, reader)
}

func (s *CatalogService) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if bucket, key, ok := strings.Cut(strings.TrimPrefix(source, "s3://"), "/"); ok && strings.HasPrefix(source, "s3://") {
		if s.s3Client == nil {
			return nil, fmt.Errorf("s3 source given but aws is not configured")
		}
		out, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch s3://%s/%s: %w", bucket, key, err)
		}
		return out.Body, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", source, err)
	}
	return f, nil
}

// importCSV expects columns: name, gender, origin, meaning, popularity.
// A leading header row is skipped; an empty popularity column stays NULL.
func (s *CatalogService) importCSV(ctx context.Context, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 5

	imported := 0
	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("failed to read csv record: %w", err)
		}
		if first {
			first = false
			if strings.EqualFold(record[0], "name") {
				continue
			}
		}

		gender := models.Gender(strings.ToLower(strings.TrimSpace(record[1])))
		if !gender.Valid() {
			log.Warn().
				Str("name", record[0]).
				Str("gender", record[1]).
				Msg("Skipping row with unknown gender")
			continue
		}

		var popularity *int
		if raw := strings.TrimSpace(record[4]); raw != "" {
			p, err := strconv.Atoi(raw)
			if err != nil {
				return imported, fmt.Errorf("invalid popularity %q for %s: %w", raw, record[0], err)
			}
			popularity = &p
		}

		name := &models.BabyName{
			ID:         uuid.New().String(),
			Name:       strings.TrimSpace(record[0]),
			Gender:     gender,
			Origin:     strings.TrimSpace(record[2]),
			Meaning:    strings.TrimSpace(record[3]),
			Popularity: popularity,
			CreatedAt:  time.Now(),
		}
		if err := s.store.Insert(ctx, name); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}
