package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/pmakowski/twinsight/internal/domain"
)

// levelFlag is a pflag.Value that accepts a node level or "all".
type levelFlag struct {
	level domain.NodeLevel
	all   bool
	set   bool
}

var _ pflag.Value = (*levelFlag)(nil)

func (f *levelFlag) String() string {
	if f.all {
		return "all"
	}
	return string(f.level)
}

func (f *levelFlag) Set(value string) error {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "all" {
		f.all = true
		f.set = true
		return nil
	}
	if !domain.ValidNodeLevels[v] {
		return fmt.Errorf("invalid level %q (expected activity, operation, action or all)", value)
	}
	f.level = domain.NodeLevel(v)
	f.set = true
	return nil
}

func (f *levelFlag) Type() string {
	return "level"
}
