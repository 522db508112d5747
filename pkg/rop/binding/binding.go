package binding

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ib-77/ropflag/pkg/rop"
)

// Binder runs flag callbacks once flags are parsed.
type Binder struct {
	cmd   *cobra.Command
	flags *pflag.FlagSet
	log   zerolog.Logger
	hooks []hook
}

type hook struct {
	name string
	run  func(inv *rop.Invocation) error
}

type Option func(*Binder)

// WithLogger logs every callback run at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Binder) {
		b.log = log
	}
}

// New binds to the local flags of cmd and runs callbacks from its PreRunE.
// An existing PreRunE, or PreRun when PreRunE is nil, runs after the callbacks
// succeed.
//
// New must be called after the command's pre-run hooks are set: assigning
// cmd.PreRunE afterwards replaces the binder. Use ChainPreRunE to add a hook
// to a command that is already bound.
func New(cmd *cobra.Command, opts ...Option) *Binder {
	b := newBinder(cmd.Flags(), opts...)
	b.cmd = cmd

	prevE, prev := cmd.PreRunE, cmd.PreRun
	cmd.PreRunE = func(c *cobra.Command, args []string) error {
		if err := b.Apply(c.Context()); err != nil {
			return err
		}
		switch {
		case prevE != nil:
			return prevE(c, args)
		case prev != nil:
			prev(c, args)
		}
		return nil
	}
	return b
}

// ChainPreRunE runs hook after the pre-run hooks already installed on cmd,
// including the flag callbacks of a Binder.
func ChainPreRunE(cmd *cobra.Command, hook func(cmd *cobra.Command, args []string) error) {
	prevE, prev := cmd.PreRunE, cmd.PreRun
	cmd.PreRunE = func(c *cobra.Command, args []string) error {
		switch {
		case prevE != nil:
			if err := prevE(c, args); err != nil {
				return err
			}
		case prev != nil:
			prev(c, args)
		}
		return hook(c, args)
	}
}

// NewFlagSet binds to a plain flag set. The caller runs Apply after Parse.
func NewFlagSet(fs *pflag.FlagSet, opts ...Option) *Binder {
	return newBinder(fs, opts...)
}

func newBinder(fs *pflag.FlagSet, opts ...Option) *Binder {
	b := &Binder{
		flags: fs,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Flag defines a single-valued flag. The callback runs once on the last
// occurrence, or on def when the flag is absent, and its result is stored in
// the returned pointer.
func Flag[In, Out any](b *Binder, name, short, usage string, parse Parser[In], def In,
	callback rop.Callback[In, Out]) *Out {

	v := newValue(parse, false)
	b.flags.VarP(v, name, short, usage)
	b.flags.Lookup(name).DefValue = fmt.Sprint(def)

	target := new(Out)
	b.register(name, func(inv *rop.Invocation) error {
		in, ok := v.last()
		if !ok {
			in = def
		}
		out, err := rop.Apply(callback, inv, in)
		if err != nil {
			return err
		}
		*target = out
		return nil
	})
	return target
}

// Multi defines a repeatable flag. The callback runs once on every occurrence
// collected in command-line order; an absent flag gives an empty slice.
func Multi[In, Out any](b *Binder, name, short, usage string, parse Parser[In],
	callback rop.Callback[[]In, []Out]) *[]Out {

	v := newValue(parse, true)
	b.flags.VarP(v, name, short, usage)

	target := new([]Out)
	b.register(name, func(inv *rop.Invocation) error {
		out, err := rop.Apply(callback, inv, v.collected())
		if err != nil {
			return err
		}
		*target = out
		return nil
	})
	return target
}

// Apply runs the callbacks in the order their flags were defined. The first
// failure stops the rest and is returned, named after its flag.
func (b *Binder) Apply(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	inv := rop.NewInvocation(ctx, b.cmd, nil)

	for _, h := range b.hooks {
		if err := ctx.Err(); err != nil {
			return err
		}

		flagInv := inv.ForFlag(b.flags.Lookup(h.name))
		b.log.Debug().
			Str("invocation", inv.ID().String()).
			Str("flag", h.name).
			Msg("running flag callback")

		if err := h.run(flagInv); err != nil {
			b.log.Debug().
				Err(err).
				Str("invocation", inv.ID().String()).
				Str("flag", h.name).
				Msg("flag callback failed")
			return rop.WithParam(err, h.name)
		}
	}
	return nil
}

func (b *Binder) register(name string, run func(inv *rop.Invocation) error) {
	b.hooks = append(b.hooks, hook{name: name, run: run})
}
