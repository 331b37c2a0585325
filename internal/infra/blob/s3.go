package blob

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/masblog-io/masblog/internal/config"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
)

// UploadResult is what the object store reports back for a stored image.
// Width/Height/Format are best-effort; callers fall back to locally known
// metadata when they are absent.
type UploadResult struct {
	Key    string
	URL    string
	Bytes  int64
	Width  *int
	Height *int
	Format string
}

// ObjectStore is the remote image store boundary. Upload returns the stable
// key and public serving URL; Destroy removes the object by key. Both fail
// with a provider-kind error on transport problems.
type ObjectStore interface {
	Upload(ctx context.Context, data []byte, contentType, originalName string) (*UploadResult, error)
	Destroy(ctx context.Context, key string) error
}

// S3Store implements ObjectStore on an S3-compatible bucket.
type S3Store struct {
	client        *s3.Client
	uploader      *manager.Uploader
	bucket        string
	sse           *s3types.ServerSideEncryption
	folder        string
	publicBaseURL string
}

func NewS3(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	s3Opts := func(o *s3.Options) {
		if ep := strings.TrimSpace(cfg.S3.Endpoint); ep != "" {
			if !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
				ep = "https://" + ep
			}
			if u, uerr := url.Parse(ep); uerr == nil {
				o.BaseEndpoint = aws.String(u.String())
			}
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	}

	client := s3.NewFromConfig(acfg, s3Opts)

	var sse *s3types.ServerSideEncryption
	if cfg.S3.SSE != "" {
		v := s3types.ServerSideEncryption(cfg.S3.SSE)
		sse = &v
	}

	base := strings.TrimRight(cfg.S3.PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(cfg.S3.Endpoint, "/") + "/" + cfg.S3.Bucket
	}

	return &S3Store{
		client:        client,
		uploader:      manager.NewUploader(client),
		bucket:        cfg.S3.Bucket,
		sse:           sse,
		folder:        strings.Trim(cfg.S3.UploadFolder, "/"),
		publicBaseURL: base,
	}, nil
}

// Upload stores data under a fresh key and returns the key plus the public
// serving URL. The URL embeds a v<unix> version segment so that replaced
// content never collides with a cached older URL.
func (s *S3Store) Upload(ctx context.Context, data []byte, contentType, originalName string) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, apperr.BadRequest("empty file upload")
	}

	res := &UploadResult{Bytes: int64(len(data))}
	if imgCfg, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		w, h := imgCfg.Width, imgCfg.Height
		res.Width = &w
		res.Height = &h
		res.Format = format
	}

	key := strings.ReplaceAll(uuid.New().String(), "-", "")
	if s.folder != "" {
		key = s.folder + "/" + key
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata:    map[string]string{"name": originalName},
	}
	if s.sse != nil {
		input.ServerSideEncryption = *s.sse
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return nil, apperr.Provider("object store upload failed", err)
	}

	res.Key = key
	res.URL = s.publicURL(key, res.Format)
	return res, nil
}

// Destroy removes the object stored under key.
func (s *S3Store) Destroy(ctx context.Context, key string) error {
	if key == "" {
		return apperr.BadRequest("key is empty")
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return apperr.Provider(fmt.Sprintf("object store destroy failed for %s", key), err)
	}
	return nil
}

func (s *S3Store) publicURL(key, format string) string {
	u := fmt.Sprintf("%s/upload/v%d/%s", s.publicBaseURL, time.Now().Unix(), key)
	if format != "" {
		u += "." + format
	}
	return u
}

// KeyFromURL extracts the object store key from a public serving URL. The
// path after the /upload/ marker may carry a v<digits> version segment and
// a file extension; both are dropped. Returns "" for anything that does not
// look like a serving URL; callers treat that as bad input, not a retry.
func KeyFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	const marker = "/upload/"
	idx := strings.Index(u.Path, marker)
	if idx == -1 {
		return ""
	}

	parts := make([]string, 0, 4)
	for _, p := range strings.Split(u.Path[idx+len(marker):], "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	// drop the leading version segment like "v1700000000" if present
	for i, p := range parts {
		if isVersionSegment(p) {
			parts = parts[i+1:]
			break
		}
	}
	if len(parts) == 0 {
		return ""
	}

	joined := strings.Join(parts, "/")
	if ext := path.Ext(joined); ext != "" {
		joined = strings.TrimSuffix(joined, ext)
	}
	return joined
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
