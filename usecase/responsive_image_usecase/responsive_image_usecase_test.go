package responsive_image_usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dive-media/domain"
	"dive-media/mocks"
	"dive-media/port/transform_port"
	"dive-media/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const storageOrigin = "https://proj.supabase.co"

type fakeOriginals struct {
	calls atomic.Int32
	gate  chan struct{}
	err   error
	// failOnce limits err to the first call.
	failOnce bool
}

func (f *fakeOriginals) EnsureOriginalExists(ctx context.Context, objectPath, sourceURL, ext string) (*domain.StoredOriginal, error) {
	n := f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil && (!f.failOnce || n == 1) {
		return nil, f.err
	}
	return &domain.StoredOriginal{
		Bucket:      "site-images",
		Path:        objectPath,
		ContentType: domain.ContentTypeForExtension(ext),
		Uploaded:    true,
	}, nil
}

type fakeTransforms struct {
	supported     bool
	calls         atomic.Int32
	lastURL       atomic.Value
	invalidateErr error

	mu          sync.Mutex
	invalidated []string
}

func (f *fakeTransforms) EnsureTransformSupport(_ context.Context, transformURL string) bool {
	f.calls.Add(1)
	f.lastURL.Store(transformURL)
	return f.supported
}

func (f *fakeTransforms) InvalidateTransformSupport(_ context.Context, transformURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, transformURL)
	return f.invalidateErr
}

func (f *fakeTransforms) invalidatedURLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.invalidated...)
}

type fakePlaceholders struct {
	calls   atomic.Int32
	err     error
	lastURL atomic.Value
}

func (f *fakePlaceholders) BuildPlaceholder(_ context.Context, placeholderURL string) (string, error) {
	f.calls.Add(1)
	f.lastURL.Store(placeholderURL)
	if f.err != nil {
		return "", f.err
	}
	return "data:image/webp;base64,AAAA", nil
}

func defaultSettings() Settings {
	return Settings{StorageOrigin: storageOrigin, Bucket: "site-images"}
}

func newTestUsecase(originals *fakeOriginals, transforms *fakeTransforms, placeholders *fakePlaceholders) *ResponsiveImageUsecase {
	var ph transform_port.PlaceholderPort
	if placeholders != nil {
		ph = placeholders
	}
	return NewResponsiveImageUsecase(originals, transforms, ph, defaultSettings(), NewResultCache(128, 0))
}

func scenarioRequest() *domain.ImageRequest {
	return &domain.ImageRequest{
		SourceURL:   "https://example.com/a.png",
		Width:       800,
		Height:      450,
		Breakpoints: []int{400, 800, 1600},
		Formats:     []domain.ImageFormat{domain.FormatWebP},
		MaxWidth:    1600,
	}
}

var srcsetWidth = regexp.MustCompile(`(\d+)w(?:,|$)`)

func srcsetWidths(t *testing.T, srcset string) []int {
	t.Helper()
	var widths []int
	for _, m := range srcsetWidth.FindAllStringSubmatch(srcset, -1) {
		w, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		widths = append(widths, w)
	}
	return widths
}

func TestGetResponsiveImage_Scenario(t *testing.T) {
	originals := &fakeOriginals{}
	transforms := &fakeTransforms{supported: true}
	uc := newTestUsecase(originals, transforms, &fakePlaceholders{})

	res, err := uc.GetResponsiveImage(context.Background(), scenarioRequest())
	require.NoError(t, err)

	assert.Equal(t, "site-images", res.Bucket)
	assert.True(t, strings.HasPrefix(res.Path, "responsive/"))
	assert.True(t, strings.HasSuffix(res.Path, "/original.png"))
	assert.Equal(t, storageOrigin+"/storage/v1/object/public/site-images/"+res.Path, res.Original)
	assert.Equal(t, storageOrigin+"/storage/v1/render/image/public/site-images/"+res.Path+"?format=webp&width=800&quality=75&resize=cover", res.DefaultSrc)
	assert.Equal(t, "(max-width: 1600px) 100vw, 1600px", res.Sizes)
	assert.InDelta(t, 800.0/450.0, res.AspectRatio, 1e-9)
	assert.Empty(t, res.Placeholder)

	require.Len(t, res.Sources, 1)
	assert.Equal(t, "image/webp", res.Sources[0].Type)
	assert.Equal(t, []int{400, 800, 1600}, srcsetWidths(t, res.Sources[0].SrcSet))
	assert.EqualValues(t, 1, originals.calls.Load())
	assert.Equal(t, res.DefaultSrc, transforms.lastURL.Load())
}

func TestGetResponsiveImage_DefaultFormats(t *testing.T) {
	uc := newTestUsecase(&fakeOriginals{}, &fakeTransforms{supported: true}, nil)

	res, err := uc.GetResponsiveImage(context.Background(), &domain.ImageRequest{
		SourceURL: "https://example.com/photo.jpg",
		Width:     640,
		Height:    480,
	})
	require.NoError(t, err)

	require.Len(t, res.Sources, 2)
	assert.Equal(t, "image/avif", res.Sources[0].Type)
	assert.Equal(t, "image/webp", res.Sources[1].Type)
	assert.Contains(t, res.DefaultSrc, "format=webp&width=640")
	assert.Equal(t, "(max-width: 640px) 100vw, 640px", res.Sizes)
}

func TestGetResponsiveImage_IdempotentStorage(t *testing.T) {
	originals := &fakeOriginals{}
	uc := newTestUsecase(originals, &fakeTransforms{supported: true}, nil)

	first, err := uc.GetResponsiveImage(context.Background(), scenarioRequest())
	require.NoError(t, err)
	second, err := uc.GetResponsiveImage(context.Background(), scenarioRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, originals.calls.Load())
	assert.Equal(t, 1, uc.memoSize())
}

func TestGetResponsiveImage_SingleFlight(t *testing.T) {
	const callers = 20

	originals := &fakeOriginals{gate: make(chan struct{})}
	uc := newTestUsecase(originals, &fakeTransforms{supported: true}, nil)

	results := make([]*domain.ResponsiveImageResult, callers)
	errs := make([]error, callers)
	var started, wg sync.WaitGroup
	started.Add(callers)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			started.Done()
			results[i], errs[i] = uc.GetResponsiveImage(context.Background(), scenarioRequest())
		}(i)
	}

	started.Wait()
	require.Eventually(t, func() bool { return originals.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	// Give late goroutines time to join the in-flight call before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(originals.gate)
	wg.Wait()

	assert.EqualValues(t, 1, originals.calls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
}

func TestGetResponsiveImage_Determinism(t *testing.T) {
	a, err := newTestUsecase(&fakeOriginals{}, &fakeTransforms{supported: true}, nil).
		GetResponsiveImage(context.Background(), scenarioRequest())
	require.NoError(t, err)
	b, err := newTestUsecase(&fakeOriginals{}, &fakeTransforms{supported: true}, nil).
		GetResponsiveImage(context.Background(), scenarioRequest())
	require.NoError(t, err)

	assert.Equal(t, a.Path, b.Path)
	assert.Equal(t, a.DefaultSrc, b.DefaultSrc)
	assert.Equal(t, a.Sizes, b.Sizes)
	assert.Equal(t, a, b)
}

func TestGetResponsiveImage_BreakpointInvariant(t *testing.T) {
	cases := []struct {
		width       int
		maxWidth    int
		breakpoints []int
	}{
		{800, 1600, []int{400, 800, 1600}},
		{800, 1200, []int{320, 640, 2400, 3200}},
		{2000, 1600, []int{400, 1600, 1800}},
		{350, 0, nil},
		{1024, 0, []int{0, -1, 512, 4096}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("w%d_max%d", tc.width, tc.maxWidth), func(t *testing.T) {
			uc := newTestUsecase(&fakeOriginals{}, &fakeTransforms{supported: true}, nil)
			res, err := uc.GetResponsiveImage(context.Background(), &domain.ImageRequest{
				SourceURL:   "https://example.com/a.jpg",
				Width:       tc.width,
				Height:      600,
				Breakpoints: tc.breakpoints,
				MaxWidth:    tc.maxWidth,
			})
			require.NoError(t, err)

			effectiveMax := tc.maxWidth
			if effectiveMax == 0 {
				effectiveMax = domain.DefaultMaxWidth
			}
			limit := max(effectiveMax, tc.width)

			for _, src := range res.Sources {
				widths := srcsetWidths(t, src.SrcSet)
				assert.Contains(t, widths, tc.width)
				for _, w := range widths {
					assert.LessOrEqual(t, w, limit)
				}
			}
		})
	}
}

func TestGetResponsiveImage_NonAbsoluteSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	originals := mocks.NewMockOriginalStorePort(ctrl)
	transforms := mocks.NewMockTransformSupportPort(ctrl)
	placeholders := mocks.NewMockPlaceholderPort(ctrl)
	// No EXPECT(): any call fails the test.

	uc := NewResponsiveImageUsecase(originals, transforms, placeholders, defaultSettings(), nil)

	res, err := uc.GetResponsiveImage(context.Background(), &domain.ImageRequest{
		SourceURL:   "/local/image.jpg",
		Width:       300,
		Height:      200,
		Placeholder: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "/local/image.jpg", res.DefaultSrc)
	assert.Equal(t, "/local/image.jpg", res.Original)
	assert.Empty(t, res.Sources)
	assert.NotNil(t, res.Sources)
	assert.Empty(t, res.Path)
	assert.InDelta(t, 1.5, res.AspectRatio, 1e-9)
}

func TestGetResponsiveImage_TransformUnavailable(t *testing.T) {
	placeholders := &fakePlaceholders{}
	uc := newTestUsecase(&fakeOriginals{}, &fakeTransforms{supported: false}, placeholders)

	req := scenarioRequest()
	req.Placeholder = true
	res, err := uc.GetResponsiveImage(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, res.Original, res.DefaultSrc)
	assert.Contains(t, res.DefaultSrc, "/storage/v1/object/public/")
	assert.Empty(t, res.Sources)
	assert.Empty(t, res.Placeholder)
	assert.EqualValues(t, 0, placeholders.calls.Load())
}

func TestGetResponsiveImage_Placeholder(t *testing.T) {
	placeholders := &fakePlaceholders{}
	uc := newTestUsecase(&fakeOriginals{}, &fakeTransforms{supported: true}, placeholders)

	req := scenarioRequest()
	req.Placeholder = true
	res, err := uc.GetResponsiveImage(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "data:image/webp;base64,AAAA", res.Placeholder)
	assert.True(t, strings.HasSuffix(placeholders.lastURL.Load().(string), "?format=webp&width=24&quality=40&resize=cover"))
}

func TestGetResponsiveImage_PlaceholderFailureIsNonFatal(t *testing.T) {
	placeholders := &fakePlaceholders{err: stderrors.New("decode failed")}
	uc := newTestUsecase(&fakeOriginals{}, &fakeTransforms{supported: true}, placeholders)

	req := scenarioRequest()
	req.Placeholder = true
	res, err := uc.GetResponsiveImage(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, res.Placeholder)
	assert.Len(t, res.Sources, 1)
}

func TestGetResponsiveImage_QualityClamp(t *testing.T) {
	tests := []struct {
		quality int
		want    string
	}{
		{5, "quality=10&"},
		{500, "quality=100&"},
		{0, "quality=75&"},
		{60, "quality=60&"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.quality), func(t *testing.T) {
			uc := newTestUsecase(&fakeOriginals{}, &fakeTransforms{supported: true}, nil)
			req := scenarioRequest()
			req.Quality = tt.quality

			res, err := uc.GetResponsiveImage(context.Background(), req)
			require.NoError(t, err)

			assert.Contains(t, res.DefaultSrc, tt.want)
			for _, src := range res.Sources {
				assert.Equal(t, 3, strings.Count(src.SrcSet, tt.want))
			}
		})
	}
}

func TestGetResponsiveImage_MissingStorageOrigin(t *testing.T) {
	originals := &fakeOriginals{}
	uc := NewResponsiveImageUsecase(originals, &fakeTransforms{}, nil, Settings{}, nil)

	_, err := uc.GetResponsiveImage(context.Background(), scenarioRequest())

	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
	assert.EqualValues(t, 0, originals.calls.Load())
}

func TestGetResponsiveImage_EmptySource(t *testing.T) {
	uc := newTestUsecase(&fakeOriginals{}, &fakeTransforms{}, nil)

	_, err := uc.GetResponsiveImage(context.Background(), &domain.ImageRequest{Width: 100})
	assert.True(t, errors.IsValidationError(err))
}

func TestGetResponsiveImage_NonPositiveWidth(t *testing.T) {
	originals := &fakeOriginals{}
	transforms := &fakeTransforms{supported: true}
	uc := newTestUsecase(originals, transforms, nil)

	for _, width := range []int{0, -320} {
		t.Run(fmt.Sprintf("w%d", width), func(t *testing.T) {
			_, err := uc.GetResponsiveImage(context.Background(), &domain.ImageRequest{
				SourceURL: "https://example.com/a.png",
				Width:     width,
			})
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}

	assert.EqualValues(t, 0, originals.calls.Load())
	assert.EqualValues(t, 0, transforms.calls.Load())
	assert.Equal(t, 0, uc.memoSize())
}

func TestGetResponsiveImage_FetchFailureIsNotMemoized(t *testing.T) {
	fetchErr := errors.NewOriginFetchError("failed to fetch source image", "gateway", "OriginFetchGateway", "http_response", stderrors.New("status code: 502"), nil)
	originals := &fakeOriginals{err: fetchErr, failOnce: true}
	uc := newTestUsecase(originals, &fakeTransforms{supported: true}, nil)

	_, err := uc.GetResponsiveImage(context.Background(), scenarioRequest())
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrOriginFetchFailed))
	assert.Equal(t, 0, uc.memoSize())

	res, err := uc.GetResponsiveImage(context.Background(), scenarioRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Sources)
	assert.EqualValues(t, 2, originals.calls.Load())
}

func TestGetResponsiveImage_BucketNotFoundDegrades(t *testing.T) {
	originals := &fakeOriginals{err: fmt.Errorf("check original: %w", errors.ErrBucketNotFound)}
	transforms := &fakeTransforms{supported: true}
	uc := newTestUsecase(originals, transforms, nil)

	res, err := uc.GetResponsiveImage(context.Background(), scenarioRequest())

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", res.DefaultSrc)
	assert.Equal(t, "https://example.com/a.png", res.Original)
	assert.Empty(t, res.Sources)
	assert.EqualValues(t, 0, transforms.calls.Load())
}

func TestGetResponsiveImage_CallerCancellationDoesNotAbortRun(t *testing.T) {
	originals := &fakeOriginals{gate: make(chan struct{})}
	uc := newTestUsecase(originals, &fakeTransforms{supported: true}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := uc.GetResponsiveImage(ctx, scenarioRequest())
		done <- err
	}()

	require.Eventually(t, func() bool { return originals.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	close(originals.gate)
	require.Eventually(t, func() bool { return uc.memoSize() == 1 }, time.Second, 5*time.Millisecond)

	_, err := uc.GetResponsiveImage(context.Background(), scenarioRequest())
	require.NoError(t, err)
	assert.EqualValues(t, 1, originals.calls.Load())
}

func TestGetResponsiveImage_ResultIsolation(t *testing.T) {
	uc := newTestUsecase(&fakeOriginals{}, &fakeTransforms{supported: true}, nil)

	first, err := uc.GetResponsiveImage(context.Background(), scenarioRequest())
	require.NoError(t, err)
	first.Sources[0].SrcSet = "mutated"

	second, err := uc.GetResponsiveImage(context.Background(), scenarioRequest())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second.Sources[0].SrcSet)
}

func TestGetResponsiveImage_WithGeneratedMocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	originals := mocks.NewMockOriginalStorePort(ctrl)
	transforms := mocks.NewMockTransformSupportPort(ctrl)
	placeholders := mocks.NewMockPlaceholderPort(ctrl)

	originals.EXPECT().
		EnsureOriginalExists(gomock.Any(), "tours/raja-ampat/hero/original.png", "https://example.com/a.png", "png").
		Return(&domain.StoredOriginal{Bucket: "site-images", Path: "tours/raja-ampat/hero/original.png"}, nil).
		Times(1)
	transforms.EXPECT().EnsureTransformSupport(gomock.Any(), gomock.Any()).Return(true).Times(1)
	placeholders.EXPECT().BuildPlaceholder(gomock.Any(), gomock.Any()).Return("data:image/webp;base64,BBBB", nil).Times(1)

	uc := NewResponsiveImageUsecase(originals, transforms, placeholders, defaultSettings(), nil)

	req := scenarioRequest()
	req.TargetPath = "/tours/raja-ampat/hero/"
	req.Placeholder = true

	for i := 0; i < 3; i++ {
		res, err := uc.GetResponsiveImage(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "tours/raja-ampat/hero/original.png", res.Path)
		assert.Equal(t, "data:image/webp;base64,BBBB", res.Placeholder)
	}
}

func TestForget(t *testing.T) {
	originals := &fakeOriginals{}
	transforms := &fakeTransforms{supported: true}
	uc := newTestUsecase(originals, transforms, nil)

	res, err := uc.GetResponsiveImage(context.Background(), scenarioRequest())
	require.NoError(t, err)
	require.Equal(t, 1, uc.memoSize())

	require.NoError(t, uc.Forget(context.Background(), scenarioRequest()))
	assert.Equal(t, 0, uc.memoSize())
	assert.Equal(t, []string{res.DefaultSrc}, transforms.invalidatedURLs())

	_, err = uc.GetResponsiveImage(context.Background(), scenarioRequest())
	require.NoError(t, err)
	assert.EqualValues(t, 2, originals.calls.Load())
}

func TestForget_InvalidatesDegradedVerdict(t *testing.T) {
	transforms := &fakeTransforms{supported: false}
	uc := newTestUsecase(&fakeOriginals{}, transforms, nil)

	res, err := uc.GetResponsiveImage(context.Background(), scenarioRequest())
	require.NoError(t, err)
	require.Equal(t, res.Original, res.DefaultSrc)

	require.NoError(t, uc.Forget(context.Background(), scenarioRequest()))
	assert.Equal(t, []string{transforms.lastURL.Load().(string)}, transforms.invalidatedURLs())
}

func TestForget_PassthroughSkipsInvalidation(t *testing.T) {
	transforms := &fakeTransforms{supported: true}
	uc := newTestUsecase(&fakeOriginals{}, transforms, nil)

	req := &domain.ImageRequest{SourceURL: "/local/image.jpg", Width: 300}
	_, err := uc.GetResponsiveImage(context.Background(), req)
	require.NoError(t, err)

	require.NoError(t, uc.Forget(context.Background(), req))
	assert.Equal(t, 0, uc.memoSize())
	assert.Empty(t, transforms.invalidatedURLs())
}

func TestForget_InvalidationError(t *testing.T) {
	transforms := &fakeTransforms{supported: true, invalidateErr: stderrors.New("connection refused")}
	uc := newTestUsecase(&fakeOriginals{}, transforms, nil)

	err := uc.Forget(context.Background(), scenarioRequest())
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection refused")
}

func TestForget_Validation(t *testing.T) {
	uc := newTestUsecase(&fakeOriginals{}, &fakeTransforms{}, nil)

	assert.True(t, errors.IsValidationError(uc.Forget(context.Background(), &domain.ImageRequest{Width: 100})))
	assert.True(t, errors.IsValidationError(uc.Forget(context.Background(), &domain.ImageRequest{SourceURL: "https://example.com/a.png"})))
}
