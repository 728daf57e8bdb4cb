package gitfault

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/jmgilman/go/expected/errors"
)

// Kind enumerates go-git failures.
type Kind int

// Kinds are named after the go-git sentinel they stand for.
const (
	RepositoryNotExists Kind = iota + 1
	RepositoryNotFound
	RepositoryAlreadyExists
	ReferenceNotFound
	RemoteNotFound
	RemoteExists
	EmptyRemoteRepository
	AuthenticationRequired
	AuthorizationFailed
	WorktreeNotClean
	MissingURL
	MissingAuthor
	MissingName
	HashOrReference
	BranchHashExclusive
	BranchExists
	BranchNotFound
	TagExists
	TagNotFound
	DestinationExists
	SubmoduleAlreadyInitialized
	EmptyCommit
	AlreadyUpToDate
)

// sentinels lists the go-git errors in match order. The message of each
// kind is the text of its sentinel.
var sentinels = []struct {
	target error
	kind   Kind
}{
	{gogit.ErrRepositoryNotExists, RepositoryNotExists},
	{transport.ErrRepositoryNotFound, RepositoryNotFound},
	{gogit.ErrRepositoryAlreadyExists, RepositoryAlreadyExists},
	{plumbing.ErrReferenceNotFound, ReferenceNotFound},
	{gogit.ErrRemoteNotFound, RemoteNotFound},
	{gogit.ErrRemoteExists, RemoteExists},
	{transport.ErrEmptyRemoteRepository, EmptyRemoteRepository},
	{transport.ErrAuthenticationRequired, AuthenticationRequired},
	{transport.ErrAuthorizationFailed, AuthorizationFailed},
	{gogit.ErrWorktreeNotClean, WorktreeNotClean},
	{gogit.ErrMissingURL, MissingURL},
	{gogit.ErrMissingAuthor, MissingAuthor},
	{gogit.ErrMissingName, MissingName},
	{gogit.ErrHashOrReference, HashOrReference},
	{gogit.ErrBranchHashExclusive, BranchHashExclusive},
	{gogit.ErrBranchExists, BranchExists},
	{gogit.ErrBranchNotFound, BranchNotFound},
	{gogit.ErrTagExists, TagExists},
	{gogit.ErrTagNotFound, TagNotFound},
	{gogit.ErrDestinationExists, DestinationExists},
	{gogit.ErrSubmoduleAlreadyInitialized, SubmoduleAlreadyInitialized},
	{gogit.ErrEmptyCommit, EmptyCommit},
	{gogit.NoErrAlreadyUpToDate, AlreadyUpToDate},
}

func messageTable() map[int]string {
	table := make(map[int]string, len(sentinels))
	for _, s := range sentinels {
		table[int(s.kind)] = s.target.Error()
	}
	return table
}

// Category is the category of go-git failures.
var Category = errors.NewCategory("git", errors.MessageTable(messageTable()))

// ErrorCode implements errors.Coder.
func (k Kind) ErrorCode() errors.Code {
	return errors.MakeCode(Category, int(k))
}
