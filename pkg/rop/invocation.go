package rop

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Invocation is the context a callback runs in. Every part of it is optional
// and a nil *Invocation is a valid empty invocation.
type Invocation struct {
	id        uuid.UUID
	createdAt time.Time
	ctx       context.Context
	command   *cobra.Command
	flag      *pflag.Flag
}

func NewInvocation(ctx context.Context, cmd *cobra.Command, flag *pflag.Flag) *Invocation {
	return &Invocation{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		ctx:       ctx,
		command:   cmd,
		flag:      flag,
	}
}

// ForFlag returns a copy of the invocation bound to another flag. The id is kept
// so all callbacks of one command run can be correlated.
func (i *Invocation) ForFlag(flag *pflag.Flag) *Invocation {
	if i == nil {
		return NewInvocation(context.Background(), nil, flag)
	}
	return &Invocation{
		id:        i.id,
		createdAt: i.createdAt,
		ctx:       i.ctx,
		command:   i.command,
		flag:      flag,
	}
}

func (i *Invocation) ID() uuid.UUID {
	if i == nil {
		return uuid.Nil
	}
	return i.id
}

// CreatedAt time creation (UTC)
func (i *Invocation) CreatedAt() time.Time {
	if i == nil {
		return time.Time{}
	}
	return i.createdAt
}

// Context never returns nil.
func (i *Invocation) Context() context.Context {
	if i == nil || i.ctx == nil {
		return context.Background()
	}
	return i.ctx
}

func (i *Invocation) Command() *cobra.Command {
	if i == nil {
		return nil
	}
	return i.command
}

func (i *Invocation) Flag() *pflag.Flag {
	if i == nil {
		return nil
	}
	return i.flag
}

// ParamName returns the name of the flag being processed or "".
func (i *Invocation) ParamName() string {
	if i == nil || i.flag == nil {
		return ""
	}
	return i.flag.Name
}
