package transition

import (
	"fmt"
	"sort"
	"strings"
)

const (
	STATIC_ORACLE       = "static"
	PREFER_SHIFT_ORACLE = "prefer-shift"
	DYNAMIC_ORACLE      = "dynamic"
)

var systems = map[string]func() System{
	"standard":  func() System { return &ArcStandard{} },
	"eager":     func() System { return &ArcEager{} },
	"hybrid":    func() System { return &ArcHybrid{} },
	"swift":     func() System { return &ArcSwift{} },
	"listbased": func() System { return &ListBased{} },
}

func SystemNames() []string {
	names := make([]string, 0, len(systems))
	for name := range systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewSystem(name string) (System, error) {
	factory, exists := systems[strings.ToLower(name)]
	if !exists {
		return nil, fmt.Errorf("unknown transition system %q, expected one of %v", name, SystemNames())
	}
	return factory(), nil
}

// OracleFuncFor looks up an oracle of system by name. Every system has a
// static oracle; Arc-Eager adds prefer-shift and dynamic, Arc-Hybrid adds
// dynamic.
func OracleFuncFor(system System, name string) (OracleFunc, error) {
	switch sys := system.(type) {
	case *ArcStandard:
		if name == STATIC_ORACLE {
			return sys.StaticOracle, nil
		}
	case *ArcEager:
		switch name {
		case STATIC_ORACLE:
			return sys.StaticOracle, nil
		case PREFER_SHIFT_ORACLE:
			return sys.PreferShiftOracle, nil
		case DYNAMIC_ORACLE:
			return sys.DynamicOracle, nil
		}
	case *ArcHybrid:
		switch name {
		case STATIC_ORACLE:
			return sys.StaticOracle, nil
		case DYNAMIC_ORACLE:
			return sys.DynamicOracle, nil
		}
	case *ArcSwift:
		if name == STATIC_ORACLE {
			return sys.StaticOracle, nil
		}
	case *ListBased:
		if name == STATIC_ORACLE {
			return sys.StaticOracle, nil
		}
	}
	return nil, fmt.Errorf("no %s oracle for %s", name, system.Name())
}
