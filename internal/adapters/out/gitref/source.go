// Package gitref discovers the checked-out reference of a local git repository.
package gitref

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/zerowrap"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/bnema/hoist/internal/domain"
)

// Source implements out.ReferenceSource on top of go-git.
type Source struct {
	dir string
}

// NewSource creates a reference source rooted at dir. Parent directories are
// searched for the repository.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// HeadReference returns the full reference name of HEAD.
// A checked-out branch yields refs/heads/<branch>. A detached HEAD yields the
// tag pointing at it, if any.
func (s *Source) HeadReference(ctx context.Context) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "git",
		zerowrap.FieldAction:  "HeadReference",
		zerowrap.FieldPath:    s.dir,
	})
	log := zerowrap.FromCtx(ctx)

	repo, err := git.PlainOpenWithOptions(s.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", log.WrapErr(err, "failed to open git repository")
	}

	ref, err := headReference(repo)
	if err != nil {
		return "", log.WrapErr(err, "failed to resolve HEAD reference")
	}

	log.Debug().Str("ref", ref).Msg("resolved HEAD reference")
	return ref, nil
}

func headReference(repo *git.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidReference, err)
	}
	if head.Name().IsBranch() {
		return head.Name().String(), nil
	}

	tags, err := tagsAt(repo, head.Hash())
	if err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "", fmt.Errorf("%w: detached HEAD %s has no tag", domain.ErrInvalidReference, head.Hash())
	}
	return tags[0], nil
}

// tagsAt returns the sorted names of tags, lightweight or annotated, that
// point at commit.
func tagsAt(repo *git.Repository, commit plumbing.Hash) ([]string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if tag, err := repo.TagObject(target); err == nil {
			c, err := tag.Commit()
			if err != nil {
				return nil
			}
			target = c.Hash
		}
		if target == commit {
			names = append(names, ref.Name().String())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk tags: %w", err)
	}

	sort.Strings(names)
	return names, nil
}
