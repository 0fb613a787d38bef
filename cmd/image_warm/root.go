package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"dive-media/config"
	"dive-media/di"
	"dive-media/domain"
	"dive-media/port/responsive_image_port"
	"dive-media/utils/logger"

	"github.com/spf13/cobra"
)

// resolverFactory builds the resolver and a cleanup func from loaded config.
type resolverFactory func(cfg *config.Config) (responsive_image_port.ResponsiveImagePort, func(), error)

func containerResolver(cfg *config.Config) (responsive_image_port.ResponsiveImagePort, func(), error) {
	container, err := di.NewApplicationComponents(cfg)
	if err != nil {
		return nil, nil, err
	}
	return container.ResponsiveImageUsecase, func() { _ = container.Close() }, nil
}

type warmOptions struct {
	src         string
	width       int
	height      int
	breakpoints []int
	formats     []string
	quality     int
	maxWidth    int
	placeholder bool
	cacheKey    string
	namespace   string
	targetPath  string
	timeout     time.Duration
}

func newRootCmd(newResolver resolverFactory, out, errOut io.Writer) *cobra.Command {
	opts := &warmOptions{}

	cmd := &cobra.Command{
		Use:   "image-warm",
		Short: "Resolve one responsive image and print the result as JSON",
		Long: `image-warm stores the canonical original of a source image (if it is not
stored yet) and prints the responsive image result the HTTP API would return.

Example usage:
  image-warm --src https://example.com/a.png --width 800 --height 450 --breakpoints 400,800,1600 --formats webp`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			// stdout carries the JSON result, so logs go to stderr.
			logger.Logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{
				Level: logger.ParseLevel(cfg.Logging.Level),
			}))

			req, err := opts.request()
			if err != nil {
				return err
			}

			resolver, cleanup, err := newResolver(cfg)
			if err != nil {
				return fmt.Errorf("build components: %w", err)
			}
			defer cleanup()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			result, err := resolver.GetResponsiveImage(ctx, req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.src, "src", "", "source image URL (required)")
	f.IntVar(&opts.width, "width", 0, "display width in pixels (required)")
	f.IntVar(&opts.height, "height", 0, "display height in pixels")
	f.IntSliceVar(&opts.breakpoints, "breakpoints", nil, "extra srcset widths, e.g. 400,800,1600")
	f.StringSliceVar(&opts.formats, "formats", nil, "output formats, e.g. avif,webp")
	f.IntVar(&opts.quality, "quality", 0, "transform quality (default from config)")
	f.IntVar(&opts.maxWidth, "max-width", 0, "largest breakpoint (default from config)")
	f.BoolVar(&opts.placeholder, "placeholder", false, "build an inline WebP placeholder")
	f.StringVar(&opts.cacheKey, "cache-key", "", "stable identity used instead of the source URL")
	f.StringVar(&opts.namespace, "namespace", "", "storage path namespace")
	f.StringVar(&opts.targetPath, "target-path", "", "explicit storage path for the original")
	f.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall timeout")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}

func (o *warmOptions) request() (*domain.ImageRequest, error) {
	if o.width <= 0 {
		return nil, fmt.Errorf("--width must be positive, got %d", o.width)
	}
	if o.timeout <= 0 {
		return nil, fmt.Errorf("--timeout must be positive, got %v", o.timeout)
	}

	formats, err := config.ParseFormats(strings.Join(o.formats, ","))
	if err != nil {
		return nil, fmt.Errorf("--formats: %w", err)
	}

	return &domain.ImageRequest{
		SourceURL:   o.src,
		Width:       o.width,
		Height:      o.height,
		CacheKey:    o.cacheKey,
		Namespace:   o.namespace,
		Breakpoints: o.breakpoints,
		Formats:     formats,
		Quality:     o.quality,
		MaxWidth:    o.maxWidth,
		Placeholder: o.placeholder,
		TargetPath:  o.targetPath,
	}, nil
}
