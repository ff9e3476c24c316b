package avatar

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/corteja-app/booking-api/internal/config"
)

const maxSide = 256

// Uploader normaliza o avatar do barbeiro (redimensiona e converte para
// webp) e publica no S3. A URL retornada é gravada direto no cadastro.
type Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewUploader(cfg *config.Config) *Uploader {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &Uploader{
		client: client,
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
	}
}

func (u *Uploader) Upload(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	original io.Reader,
) (string, error) {

	src, _, err := image.Decode(original)
	if err != nil {
		return "", fmt.Errorf("decode avatar: %w", err)
	}

	resized := downscale(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, resized, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("barbershops/%d/barbers/%d/avatar.webp", barbershopID, barberID)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w <= maxSide && h <= maxSide {
		return src
	}

	if w > h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
