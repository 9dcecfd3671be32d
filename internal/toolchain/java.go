package toolchain

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/Aman-CERP/uecheck/internal/hostenv"
	"github.com/Aman-CERP/uecheck/internal/probe"
)

var javacVersion = regexp.MustCompile(`javac\s+(\d+)(?:\.(\d+))?`)

// JavaMajor extracts the feature release from a javac banner: 8 for
// "javac 1.8.0_392", 17 for "javac 17.0.2". It returns 0 when unknown.
func JavaMajor(banner string) int {
	m := javacVersion.FindStringSubmatch(banner)
	if m == nil {
		return 0
	}
	major, _ := strconv.Atoi(m[1])
	if major == 1 && m[2] != "" {
		major, _ = strconv.Atoi(m[2])
	}
	return major
}

type javaJDK struct {
	env hostenv.Env
}

// NewJavaJDK checks for javac. JDK 8 passes cleanly; any other JDK passes
// with an advisory because UE4.27 builds with it but recommends JDK 8.
func NewJavaJDK(env hostenv.Env) probe.Probe {
	return &javaJDK{env: env}
}

func (p *javaJDK) Name() string { return NameJavaJDK }

func (p *javaJDK) Check(ctx context.Context) probe.Result {
	res, err := p.env.Exec(ctx, "javac", "-version")
	if err != nil {
		return probe.NotFound("javac not found")
	}
	// Older JDKs print the banner on stderr.
	banner := strings.TrimSpace(res.Output())
	if !strings.Contains(strings.ToLower(banner), "javac") {
		return probe.NotFound("javac did not report a version")
	}
	if JavaMajor(banner) == 8 {
		return probe.OK(banner)
	}
	return probe.Advise(banner + " - may be incompatible, UE4.27 works best with JDK 8")
}
