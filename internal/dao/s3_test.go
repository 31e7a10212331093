package dao

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/fundboard/fundboard/internal/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string]string
	pages   []*s3.ListObjectsV2Output
	bucket  string
	key     string
	prefix  string
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket, f.key = *in.Bucket, *in.Key
	body, ok := f.objects[f.bucket+"/"+f.key]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "NoSuchKey", Message: "not found"}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.bucket = *in.Bucket
	if in.Prefix != nil {
		f.prefix = *in.Prefix
	}
	page := 0
	if in.ContinuationToken != nil {
		page = 1
	}
	return f.pages[page], nil
}

type fakeConn struct {
	s3 *fakeS3
}

func (c *fakeConn) ActiveProfile() string                  { return "default" }
func (c *fakeConn) ActiveRegion() string                   { return "us-east-1" }
func (c *fakeConn) AccountID() string                      { return "123456789012" }
func (c *fakeConn) CheckConnectivity(context.Context) bool { return true }
func (c *fakeConn) S3() (aws.ObjectStore, error)           { return c.s3, nil }

func listS3(t *testing.T, uri string, conn aws.Connection) ([]Record, error) {
	t.Helper()
	sid, err := NewSourceID(uri)
	require.NoError(t, err)
	f := testFactory("", nil)
	f.SetAWS(conn)
	acc, err := AccessorFor(f, sid)
	require.NoError(t, err)
	require.IsType(t, &S3Source{}, acc)

	return acc.List(context.Background())
}

func TestS3SourceList(t *testing.T) {
	fs := &fakeS3{objects: map[string]string{
		"exports/2024/fees.csv": "id,balance\n1,10\n2,20\n",
	}}

	rr, err := listS3(t, "s3://exports/2024/fees.csv", &fakeConn{s3: fs})
	require.NoError(t, err)
	assert.Len(t, rr, 2)
	assert.Equal(t, "exports", fs.bucket)
	assert.Equal(t, "2024/fees.csv", fs.key)
}

func TestS3SourceMissingObject(t *testing.T) {
	_, err := listS3(t, "s3://exports/none.json", &fakeConn{s3: &fakeS3{}})
	assert.ErrorIs(t, err, aws.ErrNoSuchObject)
}

func TestS3SourceNoConnection(t *testing.T) {
	_, err := listS3(t, "s3://exports/fees.json", nil)
	assert.ErrorIs(t, err, aws.ErrNoConnection)
}

func TestS3SourceListPrefix(t *testing.T) {
	modified := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	fs := &fakeS3{pages: []*s3.ListObjectsV2Output{
		{
			IsTruncated:           ptr(true),
			NextContinuationToken: ptr("next"),
			CommonPrefixes:        []types.CommonPrefix{{Prefix: ptr("2024/term1/")}},
			Contents: []types.Object{
				{Key: ptr("2024/")},
				{Key: ptr("2024/fees.csv"), Size: ptr(int64(2048)), LastModified: &modified},
			},
		},
		{
			Contents: []types.Object{{Key: ptr("2024/payments.json"), Size: ptr(int64(10))}},
		},
	}}

	rr, err := listS3(t, "s3://exports/2024/", &fakeConn{s3: fs})
	require.NoError(t, err)
	require.Len(t, rr, 3)
	assert.Equal(t, "exports", fs.bucket)
	assert.Equal(t, "2024/", fs.prefix)

	assert.Equal(t, "term1/", rr[0].Text("name"))
	assert.Equal(t, "folder", rr[0].Text("kind"))
	assert.Equal(t, "s3://exports/2024/fees.csv", rr[1].ID())
	assert.Equal(t, float64(2048), rr[1].Get("size"))
	assert.Equal(t, modified, rr[1].Get("last_modified"))
	assert.Equal(t, "payments.json", rr[2].Text("name"))
}
