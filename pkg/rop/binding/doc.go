// Package binding attaches rop callbacks to cobra/pflag flags.
//
// pflag converts every occurrence of a flag with a Parser. Once parsing is
// done the Binder runs each flag's callback on the converted value, or on the
// whole collected slice for repeatable flags, and stores the callback result.
// A failing callback aborts the command with the error, named after the flag.
//
//	cmd := &cobra.Command{Use: "sum", RunE: ...}
//	b := binding.New(cmd)
//	nums := binding.Multi(b, "nums", "n", "numbers to add", binding.Int,
//		mass.Each(chain.All(check.Positive[int](), check.Max(100))))
//
// New hooks into the command's PreRunE, so call it after PreRun/PreRunE are
// set, or add later hooks with ChainPreRunE.
//
// With a bare pflag.FlagSet use NewFlagSet and call Apply after Parse.
package binding
