package services

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/repos"
	"github.com/highvale/orchard-backend/internal/types"
	"github.com/highvale/orchard-backend/internal/utils"
)

const avatarSize = 256

// AvatarService renders an initials avatar for a user and stores it under the
// media directory. The background color is derived from the user id so the
// same user always gets the same color.
type AvatarService interface {
	CreateUserAvatar(ctx context.Context, tx *gorm.DB, user *types.User) error
	RenderAvatar(name string, bg color.NRGBA) (bytes.Buffer, error)
}

type avatarService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
	mediaDir string
	palette  []color.NRGBA
	fontFace font.Face
}

func NewAvatarService(log *logger.Logger, userRepo repos.UserRepo) (AvatarService, error) {
	serviceLog := log.With("service", "AvatarService")

	mediaDir := utils.GetEnv("MEDIA_DIR", "./media", log)
	if err := os.MkdirAll(filepath.Join(mediaDir, "avatars"), 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	fontPath := utils.GetEnv("AVATAR_FONT", "", log)
	var face font.Face
	if fontPath != "" {
		loaded, err := loadFontFace(fontPath, avatarSize*0.42)
		if err != nil {
			return nil, fmt.Errorf("load avatar font: %w", err)
		}
		face = loaded
	} else {
		serviceLog.Warn("AVATAR_FONT not set, avatars render without initials")
	}

	return &avatarService{
		log:      serviceLog,
		userRepo: userRepo,
		mediaDir: mediaDir,
		palette: []color.NRGBA{
			{R: 0x2f, G: 0x6f, B: 0x4e, A: 0xff},
			{R: 0xb0, G: 0x53, B: 0x2a, A: 0xff},
			{R: 0x3a, G: 0x5f, B: 0x8a, A: 0xff},
			{R: 0x7a, G: 0x4f, B: 0x8c, A: 0xff},
			{R: 0xa8, G: 0x8a, B: 0x2d, A: 0xff},
		},
		fontFace: face,
	}, nil
}

func loadFontFace(path string, points float64) (font.Face, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := truetype.Parse(raw)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: points}), nil
}

func (as *avatarService) CreateUserAvatar(ctx context.Context, tx *gorm.DB, user *types.User) error {
	bg := as.palette[colorIndex(user.ID.String(), len(as.palette))]

	buf, err := as.RenderAvatar(user.Name, bg)
	if err != nil {
		return fmt.Errorf("render avatar: %w", err)
	}

	relPath := filepath.Join("avatars", user.ID.String()+".png")
	if err := os.WriteFile(filepath.Join(as.mediaDir, relPath), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write avatar: %w", err)
	}

	user.AvatarPath = relPath
	return as.userRepo.UpdateAvatarPath(ctx, tx, user.ID, relPath)
}

func (as *avatarService) RenderAvatar(name string, bg color.NRGBA) (bytes.Buffer, error) {
	dc := gg.NewContext(avatarSize, avatarSize)
	dc.SetColor(bg)
	dc.DrawCircle(avatarSize/2, avatarSize/2, avatarSize/2)
	dc.Fill()

	if as.fontFace != nil {
		dc.SetFontFace(as.fontFace)
		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(initials(name), avatarSize/2, avatarSize/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return bytes.Buffer{}, err
	}
	return buf, nil
}

func initials(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	switch len(parts) {
	case 0:
		return "?"
	case 1:
		return strings.ToUpper(firstRune(parts[0]))
	default:
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[len(parts)-1]))
	}
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

func colorIndex(seed string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return int(h.Sum32() % uint32(n))
}
