package cpu

import (
	"runtime"

	xcpu "golang.org/x/sys/cpu"
)

// platform is the build- and hardware-level evidence available to detection.
type platform struct {
	staticMSA    bool // built for an MSA target
	hwcapMSA     bool // kernel HWCAP reports MSA
	runtimeProbe bool // cpuinfo scanning is meaningful on this target
	prober       Prober
	arch         string
}

func hostPlatform(cfg Config) platform {
	return platform{
		staticMSA:    staticMSA,
		hwcapMSA:     xcpu.MIPS64X.HasMSA,
		runtimeProbe: runtimeProbe,
		prober:       cfg.Prober(),
		arch:         runtime.GOARCH,
	}
}

// detectFeaturesImpl resolves the features of the running process.
func detectFeaturesImpl() Features {
	cfg := LoadConfig()
	return detect(cfg, hostPlatform(cfg))
}

func detect(cfg Config, p platform) Features {
	f := Features{Architecture: p.arch}

	switch {
	case cfg.ForceNone:
		f.ForceGeneric = true
		f.Source = SourceEnv
	case cfg.ForceMSA:
		f.Caps = MSA
		f.Source = SourceEnv
	case p.staticMSA:
		f.Caps = MSA
		f.Source = SourceBuild
	case p.hwcapMSA:
		f.Caps = MSA
		f.Source = SourceHWCap
	case p.runtimeProbe:
		ok, err := p.prober.Probe()
		if err != nil {
			Logger().Debug("jsimd: cpu feature probe failed", "path", p.prober.Path, "err", err)
		}
		if ok {
			f.Caps = MSA
			f.Source = SourceProbe
		}
	}

	f.HasMSA = f.Caps&MSA != 0
	return f
}
