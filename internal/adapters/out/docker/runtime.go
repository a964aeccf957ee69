// Package docker implements the image runtime adapter using Docker API.
package docker

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/zerowrap"
	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"

	"github.com/bnema/hoist/internal/domain"
)

const (
	loadedImagePrefix   = "Loaded image: "
	loadedImageIDPrefix = "Loaded image ID: "
)

// Runtime implements the ImageRuntime interface using Docker API.
type Runtime struct {
	client *client.Client
}

// NewRuntime creates a new Docker runtime instance.
func NewRuntime() (*Runtime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &Runtime{
		client: cli,
	}, nil
}

// NewRuntimeWithClient creates a new Docker runtime instance with a custom client (for testing).
func NewRuntimeWithClient(cli *client.Client) *Runtime {
	return &Runtime{
		client: cli,
	}
}

// Close releases the underlying client.
func (r *Runtime) Close() error {
	return r.client.Close()
}

// SaveImage streams the "docker save" archive of an image.
func (r *Runtime) SaveImage(ctx context.Context, ref string) (io.ReadCloser, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "SaveImage",
		"image":               ref,
	})
	log := zerowrap.FromCtx(ctx)

	rc, err := r.client.ImageSave(ctx, []string{ref})
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return nil, log.WrapErr(fmt.Errorf("%w: image %s not found locally", domain.ErrArchiveFailed, ref), "failed to save image")
		}
		return nil, log.WrapErr(err, "failed to save image")
	}

	log.Debug().Msg("image save stream opened")
	return rc, nil
}

// LoadImage imports a "docker save" archive and returns the tags it carried.
func (r *Runtime) LoadImage(ctx context.Context, archive io.Reader) ([]string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "LoadImage",
	})
	log := zerowrap.FromCtx(ctx)

	resp, err := r.client.ImageLoad(ctx, archive, client.ImageLoadWithQuiet(true))
	if err != nil {
		return nil, log.WrapErr(err, "failed to load image")
	}
	defer resp.Body.Close()

	var refs []string
	if resp.JSON {
		refs, err = parseLoadMessages(resp.Body)
	} else {
		refs, err = parseLoadText(resp.Body)
	}
	if err != nil {
		return nil, log.WrapErr(err, "failed to read load response")
	}

	log.Info().Strs("images", refs).Msg("image loaded")
	return refs, nil
}

// TagImage adds targetRef to the image known as sourceRef.
func (r *Runtime) TagImage(ctx context.Context, sourceRef, targetRef string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "TagImage",
		"source":              sourceRef,
		"target":              targetRef,
	})
	log := zerowrap.FromCtx(ctx)

	if err := r.client.ImageTag(ctx, sourceRef, targetRef); err != nil {
		return log.WrapErr(err, "failed to tag image")
	}

	log.Debug().Msg("image tagged")
	return nil
}

// PushImage pushes ref to its registry and waits for the push to finish.
func (r *Runtime) PushImage(ctx context.Context, ref string, cred domain.RegistryCredential) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "PushImage",
		"image":               ref,
		"username":            cred.Username,
	})
	log := zerowrap.FromCtx(ctx)

	auth, err := registry.EncodeAuthConfig(registry.AuthConfig{
		Username:      cred.Username,
		Password:      cred.Password,
		ServerAddress: cred.Registry,
	})
	if err != nil {
		return log.WrapErr(err, "failed to encode auth config")
	}

	reader, err := r.client.ImagePush(ctx, ref, image.PushOptions{RegistryAuth: auth})
	if err != nil {
		return log.WrapErr(err, "failed to push image")
	}
	defer reader.Close()

	// The daemon reports push failures inside the stream, not as an HTTP status.
	if err := jsonmessage.DisplayJSONMessagesStream(reader, io.Discard, 0, false, nil); err != nil {
		return log.WrapErr(err, "push rejected")
	}

	log.Info().Msg("image pushed")
	return nil
}

// RemoveImage removes a local tag. A tag that is already gone is not an error.
func (r *Runtime) RemoveImage(ctx context.Context, ref string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "RemoveImage",
		"image":               ref,
	})
	log := zerowrap.FromCtx(ctx)

	_, err := r.client.ImageRemove(ctx, ref, image.RemoveOptions{PruneChildren: true})
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			log.Debug().Msg("image already removed")
			return nil
		}
		return log.WrapErr(err, "failed to remove image")
	}

	log.Info().Msg("image removed")
	return nil
}

func parseLoadMessages(body io.Reader) ([]string, error) {
	var refs []string
	dec := json.NewDecoder(body)
	for {
		var msg jsonmessage.JSONMessage
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return refs, nil
			}
			return nil, err
		}
		if msg.Error != nil {
			return nil, msg.Error
		}
		if ref, ok := loadedRef(msg.Stream); ok {
			refs = append(refs, ref)
		}
	}
}

func parseLoadText(body io.Reader) ([]string, error) {
	var refs []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		if ref, ok := loadedRef(scanner.Text()); ok {
			refs = append(refs, ref)
		}
	}
	return refs, scanner.Err()
}

func loadedRef(line string) (string, bool) {
	line = strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, loadedImagePrefix):
		return strings.TrimPrefix(line, loadedImagePrefix), true
	case strings.HasPrefix(line, loadedImageIDPrefix):
		return strings.TrimPrefix(line, loadedImageIDPrefix), true
	default:
		return "", false
	}
}
