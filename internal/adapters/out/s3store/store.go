// Package s3store implements run artifact storage in an S3 bucket.
package s3store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/bnema/zerowrap"

	"github.com/bnema/hoist/internal/boundaries/out"
	"github.com/bnema/hoist/internal/domain"
)

// API is the subset of the S3 client used by the store and the locker.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Config selects the bucket and connection settings.
type Config struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string
	// PathStyle is required by most S3-compatible servers.
	PathStyle bool
}

// Store keeps artifacts as <prefix>/<run-id>/<name> objects.
type Store struct {
	api    API
	bucket string
	prefix string
}

// New creates a store using the default AWS credential chain.
func New(ctx context.Context, cfg Config) (*Store, error) {
	client, err := newClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewWithAPI(client, cfg.Bucket, cfg.Prefix), nil
}

func newClient(ctx context.Context, cfg Config) (*s3.Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: artifacts.bucket is required for the s3 backend", domain.ErrInvalidConfig)
	}

	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if awsCfg.Region == "" {
		awsCfg.Region = "us-east-1"
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// NewWithAPI creates a store with a custom S3 API implementation (for testing).
func NewWithAPI(api API, bucket, prefix string) *Store {
	return &Store{
		api:    api,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Put uploads an artifact. The stream is spooled to a temporary file first
// so the upload has a known length and can be retried.
func (s *Store) Put(ctx context.Context, runID, name string, data io.Reader) (int64, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "s3",
		zerowrap.FieldAction:  "Put",
		"bucket":              s.bucket,
		"key":                 s.key(runID, name),
	})
	log := zerowrap.FromCtx(ctx)

	tmp, err := os.CreateTemp("", "hoist-artifact-*")
	if err != nil {
		return 0, log.WrapErr(err, "failed to create spool file")
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	size, err := io.Copy(tmp, data)
	if err != nil {
		return 0, log.WrapErr(err, "failed to spool artifact")
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return 0, log.WrapErr(err, "failed to rewind spool file")
	}

	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(runID, name)),
		Body:          tmp,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("application/gzip"),
	})
	if err != nil {
		return 0, log.WrapErr(err, "failed to upload artifact")
	}

	log.Debug().Int64("size", size).Msg("artifact uploaded")
	return size, nil
}

// Get downloads an artifact.
func (s *Store) Get(ctx context.Context, runID, name string) (io.ReadCloser, error) {
	key := s.key(runID, name)
	obj, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%w: s3://%s/%s", domain.ErrArtifactNotFound, s.bucket, key)
		}
		return nil, fmt.Errorf("failed to download s3://%s/%s: %w", s.bucket, key, err)
	}
	return obj.Body, nil
}

// List returns every artifact of a run, sorted by name.
func (s *Store) List(ctx context.Context, runID string) ([]out.ArtifactInfo, error) {
	prefix := s.key(runID, "")
	infos := []out.ArtifactInfo{}

	paginator := s3.NewListObjectsV2Paginator(s.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list s3://%s/%s: %w", s.bucket, prefix, err)
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			infos = append(infos, out.ArtifactInfo{Name: name, Size: aws.ToInt64(obj.Size)})
		}
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// Purge deletes every object of a run.
func (s *Store) Purge(ctx context.Context, runID string) error {
	infos, err := s.List(ctx, runID)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(infos))
	for _, info := range infos {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(s.key(runID, info.Name))})
	}

	// DeleteObjects accepts at most 1000 keys per call.
	for start := 0; start < len(objects); start += 1000 {
		end := min(start+1000, len(objects))
		_, err := s.api.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: objects[start:end], Quiet: aws.Bool(true)},
		})
		if err != nil {
			return fmt.Errorf("failed to purge run %s: %w", runID, err)
		}
	}
	return nil
}

func (s *Store) key(runID, name string) string {
	key := path.Join(s.prefix, runID) + "/"
	return key + name
}
