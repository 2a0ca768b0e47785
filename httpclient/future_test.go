package httpclient

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFuture_Resolves(t *testing.T) {
	release := make(chan struct{})
	f := NewFuture(context.Background(), func(ctx context.Context) (*Response, error) {
		<-release
		return &Response{StatusCode: 200}, nil
	})

	select {
	case <-f.Done():
		t.Fatal("future resolved early")
	default:
	}

	close(release)
	resp, err := f.Wait(context.Background())
	if err != nil || resp.StatusCode != 200 {
		t.Fatalf("unexpected result: %v, %v", resp, err)
	}

	// A resolved future keeps returning the same result.
	resp2, _ := f.Wait(context.Background())
	if resp2 != resp {
		t.Error("expected the same response on every Wait")
	}
}

func TestFuture_WaitContextExpires(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	f := NewFuture(context.Background(), func(ctx context.Context) (*Response, error) {
		<-release
		return nil, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Wait(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	select {
	case <-f.Done():
		t.Error("an expired Wait must not resolve the future")
	default:
	}
}

func TestFuture_Cancel(t *testing.T) {
	f := NewFuture(context.Background(), func(ctx context.Context) (*Response, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	f.Cancel()

	_, err := f.Wait(context.Background())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestResolvedFuture(t *testing.T) {
	want := errors.New("boom")
	f := ResolvedFuture(nil, want)

	select {
	case <-f.Done():
	default:
		t.Fatal("expected resolved future")
	}
	f.Cancel()
	if _, err := f.Wait(context.Background()); err != want {
		t.Errorf("expected %v, got %v", want, err)
	}
}
