package pcapconv

import (
	"net"

	"github.com/activecm/synplot/util"
)

// Filter drops connection attempts involving excluded addresses
type Filter struct {
	alwaysIncluded []*net.IPNet
	neverIncluded  []*net.IPNet
}

// NewFilter creates a Filter from the always and never included subnets
func NewFilter(alwaysIncluded, neverIncluded []*net.IPNet) *Filter {
	return &Filter{
		alwaysIncluded: alwaysIncluded,
		neverIncluded:  neverIncluded,
	}
}

// filterConnPair reports whether a connection attempt between src and dst
// should be left out of the extracted records. A nil filter keeps
// everything.
func (f *Filter) filterConnPair(src net.IP, dst net.IP) (ignore bool) {
	// default is not to ignore connection pair
	ignore = false
	if f == nil {
		return
	}

	// check if on always included list
	isSrcIncluded := util.ContainsIP(f.alwaysIncluded, src)
	isDstIncluded := util.ContainsIP(f.alwaysIncluded, dst)

	// check if on never included list
	isSrcExcluded := util.ContainsIP(f.neverIncluded, src)
	isDstExcluded := util.ContainsIP(f.neverIncluded, dst)

	// if an address is on both lists it is kept
	if (isSrcIncluded && isSrcExcluded) || (isDstIncluded && isDstExcluded) {
		return
	}

	// an always included address keeps the pair
	if isSrcIncluded || isDstIncluded {
		return
	}

	if isSrcExcluded || isDstExcluded {
		ignore = true
	}
	return
}
