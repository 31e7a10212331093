package aws

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
)

// DefaultRegion is used when neither flags, config nor the profile name a region.
const DefaultRegion = "us-east-1"

type Error string

const (
	ErrNoCredentials      = Error("no AWS credentials found")
	ErrExpiredCredentials = Error("AWS credentials have expired")
	ErrNoConnection       = Error("no connection to AWS")
	ErrNoSuchObject       = Error("no such S3 object")
)

func (e Error) Error() string {
	return string(e)
}

// ObjectStore reads and lists S3 objects.
type ObjectStore interface {
	GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(context.Context, *s3.ListObjectsV2Input, ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Connection represents an AWS session used by row sources.
type Connection interface {
	ActiveProfile() string
	ActiveRegion() string
	AccountID() string
	CheckConnectivity(context.Context) bool
	S3() (ObjectStore, error)
}

// ClientConfig holds the AWS connection settings.
type ClientConfig struct {
	Profile string
	Region  string
	Timeout time.Duration
}

// APIClient lazily builds AWS service clients from the shared configuration.
type APIClient struct {
	config    ClientConfig
	awsConfig *aws.Config
	s3Client  *s3.Client
	stsClient *sts.Client
	accountID string
	mx        sync.RWMutex
}

// NewAPIClient returns a client for the given settings. An empty region falls
// back to the profile's region, then to DefaultRegion.
func NewAPIClient(cfg ClientConfig) *APIClient {
	if cfg.Region == "" {
		if r, err := ProfileRegion(ConfigPath(), cfg.Profile); err == nil {
			cfg.Region = r
		}
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	return &APIClient{config: cfg}
}

// ActiveProfile returns the configured profile.
func (c *APIClient) ActiveProfile() string {
	c.mx.RLock()
	defer c.mx.RUnlock()
	if c.config.Profile == "" {
		return "default"
	}
	return c.config.Profile
}

// ActiveRegion returns the configured region.
func (c *APIClient) ActiveRegion() string {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.config.Region
}

// AccountID returns the account ID cached by CheckConnectivity.
func (c *APIClient) AccountID() string {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.accountID
}

// CheckConnectivity calls STS GetCallerIdentity and caches the account ID.
func (c *APIClient) CheckConnectivity(ctx context.Context) bool {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	cfg, err := c.loadConfig(ctx)
	if err != nil {
		return false
	}

	c.mx.Lock()
	if c.stsClient == nil {
		c.stsClient = sts.NewFromConfig(cfg)
	}
	client := c.stsClient
	c.mx.Unlock()

	result, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return false
	}

	c.mx.Lock()
	c.accountID = aws.ToString(result.Account)
	c.mx.Unlock()

	return true
}

// S3 returns an S3 client for the active region.
func (c *APIClient) S3() (ObjectStore, error) {
	c.mx.RLock()
	if c.s3Client != nil {
		defer c.mx.RUnlock()
		return c.s3Client, nil
	}
	c.mx.RUnlock()

	ctx := context.Background()
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}
	cfg, err := c.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	c.mx.Lock()
	defer c.mx.Unlock()
	if c.s3Client == nil {
		c.s3Client = s3.NewFromConfig(cfg)
	}

	return c.s3Client, nil
}

func (c *APIClient) loadConfig(ctx context.Context) (aws.Config, error) {
	c.mx.RLock()
	if c.awsConfig != nil {
		defer c.mx.RUnlock()
		return *c.awsConfig, nil
	}
	profile, region := c.config.Profile, c.config.Region
	c.mx.RUnlock()

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, WrapAWSError(err, "load AWS config")
	}

	c.mx.Lock()
	c.awsConfig = &cfg
	c.mx.Unlock()

	return cfg, nil
}

// WrapAWSError wraps AWS SDK errors with additional context.
func WrapAWSError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "AccessDeniedException":
			return fmt.Errorf("access denied for %s: %w", operation, err)
		case "ExpiredToken", "ExpiredTokenException":
			return fmt.Errorf("%w: %s", ErrExpiredCredentials, operation)
		case "InvalidClientTokenId":
			return fmt.Errorf("%w: %s", ErrNoCredentials, operation)
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: %s (%s)", ErrNoSuchObject, operation, apiErr.ErrorCode())
		case "ThrottlingException", "SlowDown":
			return fmt.Errorf("rate limited during %s: %w", operation, err)
		default:
			return fmt.Errorf("%s failed: %s (%s)", operation, apiErr.ErrorMessage(), apiErr.ErrorCode())
		}
	}

	return fmt.Errorf("%s failed: %w", operation, err)
}
