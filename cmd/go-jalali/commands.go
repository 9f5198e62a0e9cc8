package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tartampluch/go-jalali/internal/config"
	"github.com/tartampluch/go-jalali/internal/engine"
	"github.com/tartampluch/go-jalali/internal/jalali"
	"github.com/tartampluch/go-jalali/internal/locale"
)

// cli holds the state shared by all subcommands of one invocation.
type cli struct {
	clock  engine.Clock
	stderr io.Writer

	v        *viper.Viper
	validate *validator.Validate
	opts     globalOptions
	loc      *time.Location
	logReady bool
}

// globalOptions are the persistent flags, overridable with GOJALALI_* variables.
type globalOptions struct {
	Zone  string `mapstructure:"zone" validate:"required"`
	Lang  string `mapstructure:"lang" validate:"required"`
	Debug bool   `mapstructure:"debug"`
}

// feedOptions configures the feed subcommand.
type feedOptions struct {
	Lang       string `mapstructure:"lang" validate:"required"`
	Input      string `mapstructure:"input" validate:"required"`
	Output     string `mapstructure:"output" validate:"required"`
	Remind     int    `mapstructure:"remind" validate:"gte=0"`
	RemindUnit string `mapstructure:"remind-unit" validate:"oneof=d h m"`
	RemindDir  string `mapstructure:"remind-dir" validate:"oneof=before after"`
}

// newRootCommand wires every subcommand onto a fresh command tree.
func newRootCommand(app *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppBinary,
		Short:         config.CmdRootShort,
		Long:          config.CmdRootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String(config.FlagZone, config.DefaultZone, config.FlagDescZone)
	flags.String(config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	flags.Bool(config.FlagDebug, false, config.FlagDescDebug)

	root.AddCommand(
		newLeapCommand(app),
		newToJalaliCommand(),
		newToGregorianCommand(),
		newAddDaysCommand(),
		newAddMonthsCommand(),
		newEndOfDayCommand(),
		newFeedCommand(app),
		newVersionCommand(),
	)
	return root
}

// setup binds flags and environment, configures logging and resolves the zone.
func (app *cli) setup(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("%s: %w", config.ErrConfigBind, err)
	}
	app.v = v
	app.validate = validator.New()

	if err := app.bind(&app.opts); err != nil {
		return err
	}

	setupLogging(app.stderr, app.opts.Debug)
	app.logReady = true
	logStartupInfo(cmd.CommandPath())

	loc, err := time.LoadLocation(app.opts.Zone)
	if err != nil {
		return fmt.Errorf("%s %q: %w", config.ErrZoneLoad, app.opts.Zone, err)
	}
	app.loc = loc
	slog.Debug(config.MsgZoneLoaded,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyZone, loc.String(),
	)
	return nil
}

// bind decodes the bound settings into out and validates them.
func (app *cli) bind(out any) error {
	if err := app.v.Unmarshal(out); err != nil {
		return fmt.Errorf("%s: %w", config.ErrConfigBind, err)
	}
	if err := app.validate.Struct(out); err != nil {
		return fmt.Errorf("%s: %w", config.ErrInvalidOptions, err)
	}
	return nil
}

func newLeapCommand(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdLeapUse,
		Short: config.CmdLeapShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today, _ := cmd.Flags().GetBool(config.FlagToday)

			var year int
			switch {
			case today:
				j, err := jalali.ToJalali(jalali.FromTime(app.clock.Now().In(app.loc)))
				if err != nil {
					return fmt.Errorf("%s: %w", config.ErrConversion, err)
				}
				year = j.Year
			case len(args) == 1:
				y, err := parseInt(args[0])
				if err != nil {
					return err
				}
				year = y
			default:
				return errors.New(config.ErrArgsLeap)
			}

			// Years outside the supported table are reported, not answered.
			if err := (jalali.JalaliDate{Year: year, Month: jalali.Farvardin, Day: 1}).Validate(); err != nil {
				return err
			}

			format := config.MsgLeapNo
			if jalali.IsLeapYear(year) {
				format = config.MsgLeapYes
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), format, year)
			return err
		},
	}
	cmd.Flags().Bool(config.FlagToday, false, config.FlagDescToday)
	return cmd
}

func newToJalaliCommand() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdToJalaliUse,
		Short: config.CmdToJalaliShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGregorian(args[0])
			if err != nil {
				return err
			}
			j, err := jalali.ToJalali(g)
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrConversion, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), config.MsgDateOutput, j)
			return err
		},
	}
}

func newToGregorianCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdToGregUse,
		Short: config.CmdToGregShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			y, _ := f.GetInt(config.FlagYear)
			m, _ := f.GetInt(config.FlagMonth)
			d, _ := f.GetInt(config.FlagDay)
			hh, _ := f.GetInt(config.FlagHour)
			mm, _ := f.GetInt(config.FlagMinute)
			ss, _ := f.GetInt(config.FlagSecond)

			g, err := jalali.ToGregorian(jalali.JalaliDate{
				Year: y, Month: jalali.Month(m), Day: d,
				Hour: hh, Minute: mm, Second: ss,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrConversion, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), config.MsgDateOutput, g)
			return err
		},
	}

	f := cmd.Flags()
	f.Int(config.FlagYear, 0, config.FlagDescYear)
	f.Int(config.FlagMonth, 0, config.FlagDescMonth)
	f.Int(config.FlagDay, 0, config.FlagDescDay)
	f.Int(config.FlagHour, 0, config.FlagDescHour)
	f.Int(config.FlagMinute, 0, config.FlagDescMinute)
	f.Int(config.FlagSecond, 0, config.FlagDescSecond)
	for _, name := range []string{config.FlagYear, config.FlagMonth, config.FlagDay} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

// arithmeticCommand builds a "<date> <n>" subcommand around op.
// Interspersed flags are disabled so that negative counts parse as arguments.
func arithmeticCommand(use, short string, op func(jalali.GregorianDate, int) (jalali.GregorianDate, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGregorian(args[0])
			if err != nil {
				return err
			}
			n, err := parseInt(args[1])
			if err != nil {
				return err
			}
			res, err := op(g, n)
			if err != nil {
				return err
			}
			return printPair(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newAddDaysCommand() *cobra.Command {
	return arithmeticCommand(config.CmdAddDaysUse, config.CmdAddDaysShort, jalali.AddDays)
}

func newAddMonthsCommand() *cobra.Command {
	return arithmeticCommand(config.CmdAddMonthsUse, config.CmdAddMonthsShort, jalali.AddMonths)
}

func newEndOfDayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdEndOfDayUse,
		Short: config.CmdEndOfDayShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGregorian(args[0])
			if err != nil {
				return err
			}
			res, err := jalali.EndOfDay(g)
			if err != nil {
				return err
			}
			return printPair(cmd.OutOrStdout(), res)
		},
	}
}

func newFeedCommand(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdFeedUse,
		Short: config.CmdFeedShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts feedOptions
			if err := app.bind(&opts); err != nil {
				return err
			}

			tr, err := locale.New(opts.Lang)
			if err != nil {
				return err
			}

			gen := &engine.Generator{
				Clock:      app.clock,
				Source:     engine.FileSource{Path: opts.Input, Stdin: cmd.InOrStdin()},
				Location:   app.loc,
				Translator: tr,
			}
			ics, _, _, err := gen.RunSync(cmd.Context(), engine.SyncConfig{
				ReminderTrigger: engine.ReminderTrigger(opts.Remind, opts.RemindUnit, opts.RemindDir),
			})
			if err != nil {
				return err
			}
			return writeFeed(cmd.OutOrStdout(), opts.Output, ics)
		},
	}

	f := cmd.Flags()
	f.String(config.FlagInput, config.StdStream, config.FlagDescInput)
	f.String(config.FlagOutput, config.StdStream, config.FlagDescOutput)
	f.Int(config.FlagRemind, config.DefaultReminderValue, config.FlagDescRemind)
	f.String(config.FlagRemindUnit, config.UnitDays, config.FlagDescRemindUnit)
	f.String(config.FlagRemindDir, config.DirBefore, config.FlagDescRemindDir)
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdVersionUse,
		Short: config.CmdVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), config.MsgVersionOutput,
				config.AppName,
				config.Version,
				config.Commit,
				config.Date,
				runtime.GOOS,
				runtime.GOARCH,
			)
			return err
		},
	}
}

// writeFeed writes the calendar to path, or to stdout when path is "-".
func writeFeed(stdout io.Writer, path string, ics []byte) error {
	if path == config.StdStream {
		if _, err := stdout.Write(ics); err != nil {
			return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.WriteFile(path, ics, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	slog.Info(config.MsgFeedWritten,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyFile, path,
		config.LogKeySizeBytes, len(ics),
	)
	return nil
}

// parseGregorian reads a civil date, with or without a time of day.
func parseGregorian(s string) (jalali.GregorianDate, error) {
	var err error
	for _, layout := range []string{config.DateTimeFormatInput, config.DateFormatInput} {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return jalali.FromTime(t), nil
		}
	}
	return jalali.GregorianDate{}, fmt.Errorf("%s %q: %w", config.ErrDateParse, s, err)
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", config.ErrArgsInteger, s, err)
	}
	return n, nil
}

// printPair prints a Gregorian result alongside its Jalali equivalent.
func printPair(w io.Writer, g jalali.GregorianDate) error {
	j, err := jalali.ToJalali(g)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrConversion, err)
	}
	_, err = fmt.Fprintf(w, config.MsgDatePair, g, j)
	return err
}
