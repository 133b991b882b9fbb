// Package hcl_adapter loads scene descriptions written in HCL and turns them
// into live scene trees.
//
// A scene file is a list of nested `node "<kind>" "<name>"` blocks. Each
// block may carry an `arguments` block whose attributes are decoded into the
// builder's `param` fields, a `count` meta-argument that expands it into
// indexed nodes, and further `node` blocks for its children:
//
//	node "group" "storey" {
//	  node "rectangle" "outline" {
//	    arguments {
//	      width  = 2
//	      height = 1
//	    }
//	  }
//	  node "extrude" "slab" {
//	    count = 3
//	    arguments {
//	      profile = "outline"
//	      depth   = 0.2 * (count.index + 1)
//	    }
//	  }
//	}
package hcl_adapter
