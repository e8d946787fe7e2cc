package profileimage

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"image/color"
	"os"
	"path/filepath"
	"sync"
)

func (p *ProfileImage) produceJobs(ctx context.Context, count int) (<-chan int, <-chan error, error) {
	if count < 0 {
		return nil, nil, fmt.Errorf("invalid count %d", count)
	}
	out := make(chan int)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for i := 0; i < count; i++ {
			select {
			case out <- i:
			case <-ctx.Done():
				errc <- errors.New("batch cancelled")
				return
			}
		}
	}()
	return out, errc, nil
}

func (p *ProfileImage) renderWorker(ctx context.Context, in <-chan int, dir string, pal color.Palette, scale int) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for range in {
			img, err := p.Generate()
			if err != nil {
				errc <- err
				return
			}

			// Identical pictures share a name, there's no point keeping both
			file := filepath.Join(dir, fmt.Sprintf("%08X.png", crc32.ChecksumIEEE(img.Bytes())))

			if err := writeFile(file, func(f *os.File) error {
				return WritePNG(f, img, pal, scale)
			}); err != nil {
				errc <- err
				return
			}

			p.logger.Printf("Wrote \"%s\"\n", file)

			if ctx.Err() != nil {
				return
			}
		}
	}()
	return errc, nil
}

func writeFile(file string, fn func(*os.File) error) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	var first error
	for err := range errc {
		if err != nil && first == nil {
			first = err
			cancel()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Batch generates count pictures and writes each one to dir as a PNG named
// after the CRC-32 of its binary form. Generation is spread across workers
// goroutines and stops at the first error.
func (p *ProfileImage) Batch(path string, count, workers int, pal color.Palette, scale int) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if workers < 1 {
		workers = 1
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	jobs, errc, err := p.produceJobs(ctx, count)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errc, err := p.renderWorker(ctx, jobs, dir, pal, scale)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(cancelFunc, errcList...)
}
