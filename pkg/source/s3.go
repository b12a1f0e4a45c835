package source

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config параметры доступа к S3 или совместимому хранилищу (MinIO, Ceph).
// Пустые поля берутся из стандартной цепочки AWS (переменные окружения, ~/.aws).
type S3Config struct {
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	SessionToken    string `yaml:"session_token"`
	UsePathStyle    bool   `yaml:"use_path_style"`
}

// newS3Client создает клиент S3
func newS3Client(ctx context.Context, c S3Config) (*s3.Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if c.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(c.Region))
	}
	if c.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken)))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
		o.UsePathStyle = c.UsePathStyle
	}), nil
}

// openS3 скачивает объект целиком: XLSX требует произвольного доступа,
// а для CSV это избавляет от держания соединения на время разбора.
func openS3(ctx context.Context, loc Location, c S3Config) (io.ReadCloser, error) {
	client, err := newS3Client(ctx, c)
	if err != nil {
		return nil, err
	}

	buf := manager.NewWriteAtBuffer(nil)
	_, err = manager.NewDownloader(client).Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", loc, err)
	}

	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}

// createS3 возвращает writer, данные которого загружаются в S3 потоком.
// Загрузка завершается в Close; ошибка загрузки возвращается из Write или Close.
func createS3(ctx context.Context, loc Location, c S3Config) (io.WriteCloser, error) {
	client, err := newS3Client(ctx, c)
	if err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	w := &s3Writer{pw: pw, done: make(chan error, 1)}

	go func() {
		_, err := manager.NewUploader(client).Upload(ctx, &s3.PutObjectInput{
			Bucket: aws.String(loc.Bucket),
			Key:    aws.String(loc.Key),
			Body:   pr,
		})
		if err != nil {
			err = fmt.Errorf("failed to upload %s: %w", loc, err)
		}
		pr.CloseWithError(err)
		w.done <- err
	}()

	return w, nil
}

type s3Writer struct {
	pw   *io.PipeWriter
	done chan error
}

func (w *s3Writer) Write(p []byte) (int, error) {
	return w.pw.Write(p)
}

func (w *s3Writer) Close() error {
	w.pw.Close()
	return <-w.done
}

// CloseWithError обрывает поток: загрузка получает cause и объект не создается
func (w *s3Writer) CloseWithError(cause error) error {
	w.pw.CloseWithError(cause)
	<-w.done
	return nil
}
