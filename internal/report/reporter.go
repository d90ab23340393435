package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"gpucheck/internal/gpu"
	"gpucheck/internal/system"
)

// SupportedPlatform is the only GOOS with hardware enumeration
const SupportedPlatform = "windows"

// Reporter prints the four report sections to out
type Reporter struct {
	out         io.Writer
	provider    gpu.Provider
	providerErr error
	diagnostic  gpu.Diagnostic
	platform    string
	systemInfo  func(context.Context) *system.SystemInfo
	log         *zap.Logger
	labels      Labels
	header      lipgloss.Style
}

// Option configures a Reporter
type Option func(*Reporter)

// WithProvider sets the hardware enumeration handle
func WithProvider(p gpu.Provider) Option {
	return func(r *Reporter) { r.provider = p }
}

// WithProviderError records why the hardware enumeration handle could not be created
func WithProviderError(err error) Option {
	return func(r *Reporter) { r.providerErr = err }
}

// WithDiagnostic sets the vendor diagnostic runner
func WithDiagnostic(d gpu.Diagnostic) Option {
	return func(r *Reporter) { r.diagnostic = d }
}

// WithPlatform overrides the detected GOOS
func WithPlatform(goos string) Option {
	return func(r *Reporter) { r.platform = goos }
}

// WithSystemInfo overrides the OS metadata source
func WithSystemInfo(f func(context.Context) *system.SystemInfo) Option {
	return func(r *Reporter) { r.systemInfo = f }
}

// WithLogger sets the logger used for diagnostic traces
func WithLogger(l *zap.Logger) Option {
	return func(r *Reporter) { r.log = l }
}

// WithLabels sets the label table
func WithLabels(l Labels) Option {
	return func(r *Reporter) { r.labels = l }
}

// New creates a Reporter writing to out
func New(out io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		out:        out,
		diagnostic: gpu.NewNvidiaSMI(),
		platform:   runtime.GOOS,
		systemInfo: system.GetSystemInfo,
		log:        zap.NewNop(),
		labels:     English,
	}
	for _, opt := range opts {
		opt(r)
	}
	// A provider with no handle behind it is the same as no provider
	if w, ok := r.provider.(*gpu.WMI); ok && w == nil {
		r.provider = nil
	}
	r.header = lipgloss.NewRenderer(out).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12"))
	return r
}

func (r *Reporter) supported() bool {
	return r.platform == SupportedPlatform
}

func (r *Reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Reporter) section(title string) {
	r.printf("\n%s\n", r.header.Render("=== "+title+" ==="))
}

// SystemInfo prints OS, version, machine, processor and runtime lines
func (r *Reporter) SystemInfo(ctx context.Context) {
	info := r.systemInfo(ctx)
	if info == nil {
		info = &system.SystemInfo{}
	}

	r.section(r.labels.SystemHeader)
	r.printf("%s: %s %s\n", r.labels.OS, info.OSName, info.OSRelease)
	r.printf("%s: %s\n", r.labels.OSVersion, info.OSVersion)
	r.printf("%s: %s\n", r.labels.Machine, info.MachineArch)
	r.printf("%s: %s\n", r.labels.Processor, info.Processor)
	r.printf("%s: %s\n", r.labels.Runtime, info.RuntimeVersion)
}

// BasicGPUInfo prints name, memory and driver version of every controller
func (r *Reporter) BasicGPUInfo(ctx context.Context) {
	if !r.supported() {
		r.printf(r.labels.Unsupported+"\n", system.PlatformName(r.platform))
		return
	}
	if r.provider == nil {
		r.printf("%s\n", r.labels.WMIUnavailable)
		return
	}

	controllers, err := r.provider.VideoControllers(ctx)
	if err != nil {
		r.fail(r.labels.BasicError, "basic GPU query failed", err)
		return
	}

	r.section(r.labels.BasicHeader)
	for _, c := range controllers {
		r.printf("%s: %s\n", r.labels.Name, c.Name)
		if c.AdapterRAM != nil && *c.AdapterRAM > 0 {
			r.printf("%s: %s\n", r.labels.MemorySize, system.Gigabytes(*c.AdapterRAM))
		}
		r.printf("%s: %s\n", r.labels.DriverVersion, c.DriverVersion)
		r.printf("\n")
	}
}

type field struct {
	label   string
	value   string
	present bool
}

func text(label, value string) field {
	return field{label: label, value: value, present: value != ""}
}

func (r *Reporter) hertz(label string, v *uint32) field {
	present := v != nil && *v > 0
	value := r.labels.Unknown
	if present {
		value = fmt.Sprintf("%d Hz", *v)
	}
	return field{label: label, value: value, present: present}
}

func (r *Reporter) memory(v *uint64) field {
	present := v != nil && *v > 0
	value := r.labels.Unknown
	if present {
		value = system.Gigabytes(*v)
	}
	return field{label: r.labels.MemorySize, value: value, present: present}
}

// details lists the detailed fields in print order; absent ones are dropped
func (r *Reporter) details(c *gpu.VideoController) []field {
	all := []field{
		text(r.labels.Name, c.Name),
		r.memory(c.AdapterRAM),
		text(r.labels.DriverVersion, c.DriverVersion),
		text(r.labels.DisplayMode, c.VideoModeDescription),
		r.hertz(r.labels.RefreshRate, c.CurrentRefreshRate),
		text(r.labels.Status, c.Status),
		text(r.labels.VideoProcessor, c.VideoProcessor),
		text(r.labels.DisplayInterface, c.VideoMemoryType),
		text(r.labels.DriverDate, c.DriverDate),
		r.hertz(r.labels.MaxRefreshRate, c.MaxRefreshRate),
		r.hertz(r.labels.MinRefreshRate, c.MinRefreshRate),
		text(r.labels.VideoArchitecture, c.VideoArchitecture),
	}
	return lo.Filter(all, func(f field, _ int) bool { return f.present })
}

// DetailedGPUInfo prints every reported field of the first controller
func (r *Reporter) DetailedGPUInfo(ctx context.Context) {
	if !r.supported() {
		r.printf("%s\n", r.labels.DetailedUnsupported)
		return
	}
	if r.provider == nil {
		r.printf("%s\n", r.labels.WMIUnavailable)
		return
	}

	c, err := gpu.First(ctx, r.provider)
	if err != nil {
		r.fail(r.labels.DetailedError, "detailed GPU query failed", err)
		return
	}

	r.section(r.labels.DetailedHeader)
	for _, f := range r.details(c) {
		r.printf("%s: %s\n", f.label, f.value)
	}
}

// NvidiaGPUInfo prints the output of nvidia-smi
func (r *Reporter) NvidiaGPUInfo(ctx context.Context) {
	out, err := r.diagnostic.Run(ctx)
	switch {
	case err == nil:
		r.section(r.labels.NvidiaHeader)
		r.printf("%s\n", out)
	case ctx.Err() != nil:
		// Interrupted; Run reports it
		r.log.Debug("nvidia-smi interrupted", zap.Error(err))
	case errors.Is(err, gpu.ErrDiagnosticFailed):
		r.printf("\n%s\n", r.labels.NvidiaMissing)
		r.log.Debug("nvidia-smi exited with failure", zap.Error(err))
	default:
		r.printf("%s: %v\n", r.labels.NvidiaError, err)
		r.log.Warn("nvidia-smi could not be run", zap.Error(err))
	}
}

// fail prints a step error and logs it with a trace
func (r *Reporter) fail(label, msg string, err error) {
	r.printf("%s: %v\n", label, err)
	r.log.Error(msg, zap.Error(err), zap.Stack("trace"))
}

// Run prints all four sections in order. It never panics and never returns an error.
func (r *Reporter) Run(ctx context.Context) {
	defer func() {
		if v := recover(); v != nil {
			r.printf("%s: %v\n", r.labels.RunError, v)
			r.log.Error("report aborted", zap.Any("panic", v), zap.Stack("trace"))
		}
	}()

	if r.providerErr != nil {
		r.printf("%s: %v\n", r.labels.ProviderInitFailed, r.providerErr)
	}

	steps := []struct {
		name string
		fn   func(context.Context)
	}{
		{"system", r.SystemInfo},
		{"basic", r.BasicGPUInfo},
		{"detailed", r.DetailedGPUInfo},
		{"nvidia", r.NvidiaGPUInfo},
	}
	for _, s := range steps {
		if r.interrupted(ctx) {
			return
		}
		r.guard(ctx, s.name, s.fn)
	}
	r.interrupted(ctx)
}

func (r *Reporter) interrupted(ctx context.Context) bool {
	if ctx.Err() == nil {
		return false
	}
	r.printf("\n%s\n", r.labels.Interrupted)
	return true
}

// guard runs one step so that a panic inside it does not stop the others
func (r *Reporter) guard(ctx context.Context, name string, fn func(context.Context)) {
	defer func() {
		if v := recover(); v != nil {
			r.printf("%s: %v\n", r.labels.RunError, v)
			r.log.Error("report step panicked", zap.String("step", name), zap.Any("panic", v), zap.Stack("trace"))
		}
	}()
	fn(ctx)
}
