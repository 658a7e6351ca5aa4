package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
)

// HistoryReader reads commit history from a Git repository.
// Remote repositories are cloned into a temporary directory that is
// removed again by Close.
type HistoryReader struct {
	repo        *git.Repository
	opts        ReadOptions
	projectName string
	projectPath string
	cloneDir    string
}

var scpLikeURL = regexp.MustCompile(`^[^@/\\]+@[^:/\\]+:`)

// isRemote reports whether the locator points at a remote repository.
func isRemote(locator string) bool {
	return strings.Contains(locator, "://") || scpLikeURL.MatchString(locator)
}

// NewHistoryReader creates a new history reader for the given repository locator.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	r := &HistoryReader{opts: opts}

	if isRemote(opts.Locator) {
		dir, err := os.MkdirTemp("", "commit-extractor-*")
		if err != nil {
			return nil, err
		}
		repo, err := git.PlainClone(dir, false, &git.CloneOptions{URL: opts.Locator})
		if err != nil {
			os.RemoveAll(dir)
			return nil, fmt.Errorf("clone %s: %w", opts.Locator, err)
		}
		r.repo = repo
		r.cloneDir = dir
		r.projectName = projectNameFromURL(opts.Locator)
		r.projectPath = dir
		return r, nil
	}

	abs, err := filepath.Abs(opts.Locator)
	if err != nil {
		return nil, err
	}
	repo, err := git.PlainOpen(abs)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", abs, err)
	}
	r.repo = repo
	r.projectName = filepath.Base(abs)
	r.projectPath = abs
	return r, nil
}

// Close removes the temporary clone directory, if any.
func (r *HistoryReader) Close() error {
	if r.cloneDir != "" {
		return os.RemoveAll(r.cloneDir)
	}
	return nil
}

func projectNameFromURL(url string) string {
	name := strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")
	if idx := strings.LastIndexAny(name, "/:"); idx != -1 {
		name = name[idx+1:]
	}
	return name
}

// ReadCommits reads the commit history from HEAD in go-git log order.
// A repository without any commits yields an empty slice, not an error.
func (r *HistoryReader) ReadCommits(ctx context.Context) ([]Commit, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, err
	}

	tips, err := r.branchTips()
	if err != nil {
		return nil, err
	}
	mainNames := r.opts.MainBranches
	if len(mainNames) == 0 && head.Name().IsBranch() {
		mainNames = []string{head.Name().Short()}
	}

	logOpts := &git.LogOptions{From: head.Hash()}
	if r.opts.Since != nil {
		logOpts.Since = r.opts.Since
	}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, err
	}

	var results []Commit

	err = cIter.ForEach(func(c *object.Commit) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		commit, err := r.buildCommit(ctx, c, tips, mainNames)
		if err != nil {
			return err
		}
		results = append(results, commit)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// branchTip pairs a local branch name with its tip commit.
type branchTip struct {
	name string
	tip  *object.Commit
}

func (r *HistoryReader) branchTips() ([]branchTip, error) {
	refs, err := r.repo.Branches()
	if err != nil {
		return nil, err
	}

	var tips []branchTip
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		tip, err := r.repo.CommitObject(ref.Hash())
		if err != nil {
			return err
		}
		tips = append(tips, branchTip{name: ref.Name().Short(), tip: tip})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *HistoryReader) buildCommit(ctx context.Context, c *object.Commit, tips []branchTip, mainNames []string) (Commit, error) {
	changes, err := r.commitChanges(ctx, c)
	if err != nil {
		return Commit{}, err
	}

	branches, err := branchesContaining(c, tips)
	if err != nil {
		return Commit{}, err
	}

	parents := make([]string, 0, len(c.ParentHashes))
	for _, h := range c.ParentHashes {
		parents = append(parents, h.String())
	}

	var insertions, deletions int
	for _, fc := range changes {
		insertions += fc.AddedLines
		deletions += fc.DeletedLines
	}

	_, authorOffset := c.Author.When.Zone()
	_, committerOffset := c.Committer.When.Zone()

	return Commit{
		Hash:              c.Hash.String(),
		Message:           strings.TrimRight(c.Message, "\n"),
		Author:            signatureOf(c.Author),
		Committer:         signatureOf(c.Committer),
		AuthorDate:        c.Author.When,
		AuthorTZOffset:    authorOffset,
		CommitterDate:     c.Committer.When,
		CommitterTZOffset: committerOffset,
		Branches:          branches,
		InMainBranch:      containsAny(branches, mainNames),
		Merge:             c.NumParents() > 1,
		ModifiedFiles:     changes,
		Parents:           parents,
		ProjectName:       r.projectName,
		ProjectPath:       r.projectPath,
		Insertions:        insertions,
		Deletions:         deletions,
		Lines:             insertions + deletions,
		Files:             len(changes),
	}, nil
}

func signatureOf(s object.Signature) *Signature {
	sig := Signature{Name: s.Name, Email: s.Email}
	if sig.Absent() {
		return nil
	}
	return &sig
}

func branchesContaining(c *object.Commit, tips []branchTip) ([]string, error) {
	var names []string
	for _, bt := range tips {
		if bt.tip.Hash == c.Hash {
			names = append(names, bt.name)
			continue
		}
		ok, err := c.IsAncestor(bt.tip)
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, bt.name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func containsAny(haystack, needles []string) bool {
	for _, n := range needles {
		for _, h := range haystack {
			if h == n {
				return true
			}
		}
	}
	return false
}

// commitChanges extracts file changes from a commit. Merge commits are
// diffed against their first parent; root commits against the empty tree.
func (r *HistoryReader) commitChanges(ctx context.Context, c *object.Commit) ([]FileChange, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}

	var parent *object.Commit
	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err = c.Parent(0)
		if err != nil {
			return nil, err
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, err
		}
	}

	treeChanges, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, err
	}

	var changes []FileChange

	for _, change := range treeChanges {
		action, err := change.Action()
		if err != nil {
			return nil, err
		}

		fc := FileChange{OldPath: change.From.Name, NewPath: change.To.Name}
		switch {
		case action == merkletrie.Insert:
			fc.Kind = ChangeKindAdded
		case action == merkletrie.Delete:
			fc.Kind = ChangeKindDeleted
		case change.From.Name != change.To.Name:
			fc.Kind = ChangeKindRenamed
		default:
			fc.Kind = ChangeKindModified
		}

		path := fc.NewPath
		if path == "" {
			path = fc.OldPath
		}
		fc.Filename = filepath.Base(path)

		if !r.matchesFilters(path) {
			continue
		}

		patch, err := change.Patch()
		if err != nil {
			return nil, err
		}
		for _, filePatch := range patch.FilePatches() {
			for _, chunk := range filePatch.Chunks() {
				switch chunk.Type() {
				case diff.Add:
					fc.AddedLines += countLines(chunk.Content())
					fc.Hunks++
				case diff.Delete:
					fc.DeletedLines += countLines(chunk.Content())
					fc.Hunks++
				}
			}
		}

		if r.opts.IncludeSource {
			fc.Source = fileContents(c, fc.NewPath)
			if parent != nil {
				fc.SourceBefore = fileContents(parent, fc.OldPath)
			}
		}

		changes = append(changes, fc)
	}

	return changes, nil
}

// fileContents returns the text of a file at the given commit, or nil for
// missing and binary files.
func fileContents(c *object.Commit, path string) *string {
	if path == "" {
		return nil
	}
	f, err := c.File(path)
	if err != nil {
		return nil
	}
	if bin, err := f.IsBinary(); err != nil || bin {
		return nil
	}
	contents, err := f.Contents()
	if err != nil {
		return nil
	}
	return &contents
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

// matchesFilters checks if a path matches the include/exclude filters.
func (r *HistoryReader) matchesFilters(path string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range r.opts.Exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	// If no include patterns, accept all
	if len(r.opts.Include) == 0 {
		return true
	}

	for _, pattern := range r.opts.Include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}
