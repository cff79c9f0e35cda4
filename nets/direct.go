package nets

import (
	"net"
	"slices"

	"github.com/reusee/significance/configs"
)

// DirectHosts lists hosts that sources are fetched from without the proxy.
type DirectHosts []string

var _ configs.Configurable = DirectHosts(nil)

func (DirectHosts) ConfigExpr() string {
	return "direct_hosts"
}

func (Module) DirectHosts(
	loader configs.Loader,
) (ret DirectHosts) {
	for hosts := range configs.All[[]string](loader, "direct_hosts") {
		ret = append(ret, hosts...)
	}
	return
}

type IsDirectAddr func(addr string) bool

func (Module) IsDirectAddr(
	directHosts DirectHosts,
) IsDirectAddr {
	return func(addr string) bool {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			// no port
			host = addr
		}
		if slices.Contains(directHosts, host) {
			return true
		}

		ips, err := net.LookupIP(host)
		if err != nil {
			// unknown hosts go through the proxy
			return false
		}
		return slices.ContainsFunc(ips, func(ip net.IP) bool {
			return ip.IsLoopback() || ip.IsPrivate()
		})
	}
}
