// SPDX-License-Identifier: EPL-2.0

package timeline

type messageKind uint8

const (
	// replaceAll hands a whole clip set to the engine.
	replaceAll messageKind = iota + 1
	// patchOne updates one clip the engine already knows about.
	patchOne
)

func (k messageKind) String() string {
	switch k {
	case replaceAll:
		return "replace-all"
	case patchOne:
		return "patch-one"
	}
	return "unknown"
}

// message travels from Handle to Engine over the update ring.
type message struct {
	kind messageKind
	set  *clipSet // replaceAll
	clip Clip     // patchOne
}
