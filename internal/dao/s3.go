package dao

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fundboard/fundboard/internal/aws"
)

func init() {
	RegisterAccessor(SchemeS3, &S3Source{})
}

// S3Source reads a JSON, YAML or CSV export from an S3 object. Sources naming
// a bucket or a prefix list the objects stored there instead.
type S3Source struct {
	Source
}

// List returns the records held in the object, or the objects under the prefix.
func (s *S3Source) List(ctx context.Context) ([]Record, error) {
	if s.SourceID().IsPrefix() {
		return s.cached(ctx, s.listObjects)
	}
	return s.cached(ctx, s.read)
}

func (s *S3Source) client() (aws.ObjectStore, error) {
	conn := s.getFactory().AWS()
	if conn == nil {
		return nil, aws.ErrNoConnection
	}
	return conn.S3()
}

func (s *S3Source) read(ctx context.Context) ([]Record, error) {
	sid := s.SourceID()
	bucket, key, _ := strings.Cut(sid.Location, "/")
	format, err := FormatFor(sid.Ext())
	if err != nil {
		return nil, err
	}
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, aws.WrapAWSError(err, "get object "+sid.String())
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sid, err)
	}
	rr, err := Decode(format, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sid, err)
	}
	s.logger().Debug("Loaded S3 object", "bucket", bucket, "key", key, "records", len(rr))

	return rr, nil
}

// listObjects lists the objects directly under the prefix, one level deep.
func (s *S3Source) listObjects(ctx context.Context) ([]Record, error) {
	sid := s.SourceID()
	bucket, prefix, _ := strings.Cut(sid.Location, "/")
	client, err := s.client()
	if err != nil {
		return nil, err
	}

	input := s3.ListObjectsV2Input{
		Bucket:    &bucket,
		Delimiter: ptr("/"),
	}
	if prefix != "" {
		input.Prefix = &prefix
	}

	var rr []Record
	paginator := s3.NewListObjectsV2Paginator(client, &input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, aws.WrapAWSError(err, "list objects "+sid.String())
		}
		for _, p := range out.CommonPrefixes {
			if p.Prefix == nil {
				continue
			}
			rr = append(rr, Record{
				"id":   "s3://" + bucket + "/" + *p.Prefix,
				"key":  *p.Prefix,
				"name": path.Base(*p.Prefix) + "/",
				"kind": "folder",
			})
		}
		for _, o := range out.Contents {
			if o.Key == nil || *o.Key == prefix {
				continue
			}
			r := Record{
				"id":            "s3://" + bucket + "/" + *o.Key,
				"key":           *o.Key,
				"name":          path.Base(*o.Key),
				"kind":          "object",
				"storage_class": string(o.StorageClass),
			}
			if o.Size != nil {
				r["size"] = float64(*o.Size)
			}
			if o.LastModified != nil {
				r["last_modified"] = *o.LastModified
			}
			rr = append(rr, r)
		}
	}
	s.logger().Debug("Listed S3 prefix", "bucket", bucket, "prefix", prefix, "objects", len(rr))

	return rr, nil
}

func ptr[T any](v T) *T {
	return &v
}
