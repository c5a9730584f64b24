package splash

import (
	"context"
	"errors"
	"fmt"
	"pricesplash/internal/adapters"
	"pricesplash/internal/domain"
	"strings"

	"github.com/sirupsen/logrus"
)

type RotationResult struct {
	SourceKey   string
	ContentType string
	Size        int
}

type Rotator struct {
	store  adapters.ObjectStore
	picker IndexPicker
}

// Rotate copies one randomly chosen .png under images/ to splash.png.
// Nothing is written unless a source object was read successfully.
func (r *Rotator) Rotate(ctx context.Context) (RotationResult, error) {
	// STEP 1: list everything under the source prefix
	objects, err := r.store.List(ctx, domain.SplashSourcePrefix)
	if err != nil {
		return RotationResult{}, fmt.Errorf("failed to list images: %w", err)
	}

	// STEP 2: keep only .png keys, case-insensitive
	candidates := pngKeys(objects)
	if len(candidates) == 0 {
		return RotationResult{}, fmt.Errorf("%w under %q", domain.ErrEmptyCandidateSet, domain.SplashSourcePrefix)
	}

	// STEP 3: pick one
	idx := r.picker.IntN(len(candidates))
	if idx < 0 || idx >= len(candidates) {
		return RotationResult{}, fmt.Errorf("picker returned index %d for %d candidates", idx, len(candidates))
	}
	selected := candidates[idx]

	// STEP 4: read it; it may have been deleted since the listing
	obj, err := r.store.Get(ctx, selected)
	if err != nil {
		if errors.Is(err, domain.ErrObjectNotFound) {
			return RotationResult{}, fmt.Errorf("failed to fetch image %q: %w", selected, err)
		}
		return RotationResult{}, fmt.Errorf("failed to read image %q: %w", selected, err)
	}

	// STEP 5: replace the destination wholesale
	contentType := obj.ContentType
	if contentType == "" {
		contentType = domain.DefaultContentType
	}
	if err = r.store.Put(ctx, domain.Object{Key: domain.SplashKey, Body: obj.Body, ContentType: contentType}); err != nil {
		return RotationResult{}, fmt.Errorf("failed to write %q: %w", domain.SplashKey, err)
	}

	logrus.WithFields(logrus.Fields{"source": selected, "content_type": contentType}).Infof("Updated %s", domain.SplashKey)
	return RotationResult{SourceKey: selected, ContentType: contentType, Size: len(obj.Body)}, nil
}

// Run is the scheduled entry point.
func (r *Rotator) Run(ctx context.Context) error {
	_, err := r.Rotate(ctx)
	return err
}

func pngKeys(objects []domain.ObjectInfo) []string {
	keys := make([]string, 0, len(objects))
	for _, obj := range objects {
		if strings.HasSuffix(strings.ToLower(obj.Key), ".png") {
			keys = append(keys, obj.Key)
		}
	}
	return keys
}

func NewRotator(store adapters.ObjectStore, picker IndexPicker) *Rotator {
	if picker == nil {
		picker = RandomPicker{}
	}
	return &Rotator{store: store, picker: picker}
}
