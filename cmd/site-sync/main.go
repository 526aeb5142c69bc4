// Command site-sync uploads a compiled single-page application to the site's
// origin bucket. It is the upload collaborator at the edge of the deployment
// topology: it consumes the origin store identifier and never touches the
// rest of the graph.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/montevideolabs-org/blog-webapp/pkg/config"
	"github.com/montevideolabs-org/blog-webapp/pkg/logger"
	"github.com/montevideolabs-org/blog-webapp/pkg/naming"
)

// objectPutter is the slice of the S3 client the sync needs.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type target struct {
	bucket string
	dir    string
}

func main() {
	os.Exit(run())
}

func run() int {
	var configPath, dir, bucket, level string

	flag.StringVar(&configPath, "config", "deploy.yaml", "deployment config file")
	flag.StringVar(&dir, "dir", "", "directory of compiled assets (overrides config)")
	flag.StringVar(&bucket, "bucket", "", "origin bucket name (overrides config)")
	flag.StringVar(&level, "log-level", "info", "log level")
	flag.Parse()

	log, err := logger.New(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "site-sync: %v\n", err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	tgt, err := resolveTarget(configPath, dir, bucket)
	if err != nil {
		log.Error("invalid sync target", zap.Error(err))
		return 2
	}

	log = log.With(
		zap.String("run_id", ulid.Make().String()),
		zap.String("bucket", tgt.bucket),
		zap.String("dir", tgt.dir),
	)

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Error("load aws config", zap.Error(err))
		return 1
	}

	uploaded, err := syncDir(ctx, s3.NewFromConfig(awsCfg), tgt, log)
	if err != nil {
		log.Error("sync failed", zap.Error(err))
		return 1
	}

	log.Info("sync complete", zap.Int("files", uploaded))
	return 0
}

// resolveTarget combines the config file with flag overrides. The bucket name
// defaults to the one the topology derives from the domain, so the sync and
// the provisioned origin store agree without extra wiring.
func resolveTarget(configPath, dir, bucket string) (target, error) {
	tgt := target{bucket: bucket, dir: dir}

	if _, err := os.Stat(configPath); err == nil {
		cfg, err := config.Load(configPath)
		if err != nil {
			return target{}, err
		}
		if tgt.dir == "" {
			tgt.dir = cfg.AssetDir
		}
		if tgt.bucket == "" {
			tgt.bucket = cfg.Bucket
		}
		if tgt.bucket == "" && cfg.Domain != "" {
			tgt.bucket = naming.OriginBucketName(cfg.Domain)
		}
	}

	if tgt.dir == "" {
		return target{}, fmt.Errorf("no asset directory: set -dir or asset_dir in %s", configPath)
	}
	if tgt.bucket == "" {
		return target{}, fmt.Errorf("no origin bucket: set -bucket, or bucket/domain in %s", configPath)
	}
	return tgt, nil
}

// syncDir walks the asset directory and uploads every regular file, keyed by
// its slash-separated path relative to the directory root.
func syncDir(ctx context.Context, client objectPutter, tgt target, log *zap.Logger) (int, error) {
	uploaded := 0

	err := filepath.WalkDir(tgt.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(tgt.dir, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(tgt.bucket),
			Key:          aws.String(key),
			Body:         f,
			ContentType:  aws.String(contentTypeFor(key)),
			CacheControl: aws.String(cacheControlFor(key)),
		}); err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}

		uploaded++
		log.Debug("uploaded", zap.String("key", key))
		return nil
	})
	if err != nil {
		return uploaded, err
	}
	return uploaded, nil
}

func contentTypeFor(key string) string {
	ext := strings.ToLower(path.Ext(key))
	switch ext {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js", ".mjs":
		return "application/javascript"
	case ".json", ".map":
		return "application/json"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".ico":
		return "image/x-icon"
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".woff":
		return "font/woff"
	case ".woff2":
		return "font/woff2"
	case ".webmanifest":
		return "application/manifest+json"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// cacheControlFor keeps the SPA entry point revalidating on every load so
// releases roll out immediately; everything else is content-hashed by the
// bundler and can be cached hard.
func cacheControlFor(key string) string {
	if path.Base(key) == "index.html" {
		return "no-cache"
	}
	return "public, max-age=31536000, immutable"
}
