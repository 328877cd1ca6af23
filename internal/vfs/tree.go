package vfs

import (
	"sort"
	"strings"
)

// Node is one entry in the hierarchical file-tree view handed to the
// frontend.
type Node struct {
	Name     string  `json:"name"`
	Path     string  `json:"path"`
	IsDir    bool    `json:"isDir"`
	Language string  `json:"language,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Tree builds the hierarchical view of the filesystem. Directories are
// inferred from key prefixes, placeholder files are hidden, and every
// level sorts directories before files, lexically within each group.
func (f *FS) Tree() []*Node {
	root := &Node{IsDir: true}
	index := map[string]*Node{"": root}

	for _, p := range f.Paths() {
		segs := strings.Split(p, "/")
		prefix := ""
		for i, seg := range segs {
			childPath := seg
			if prefix != "" {
				childPath = prefix + "/" + seg
			}
			isLeaf := i == len(segs)-1
			if isLeaf && seg == Keep {
				break
			}
			if _, ok := index[childPath]; !ok {
				node := &Node{Name: seg, Path: childPath, IsDir: !isLeaf}
				if isLeaf {
					node.Language = f.files[p].Language
				}
				index[prefix].Children = append(index[prefix].Children, node)
				index[childPath] = node
			}
			prefix = childPath
		}
	}

	var sortNodes func(ns []*Node)
	sortNodes = func(ns []*Node) {
		sort.Slice(ns, func(i, j int) bool {
			if ns[i].IsDir != ns[j].IsDir {
				return ns[i].IsDir
			}
			return ns[i].Name < ns[j].Name
		})
		for _, n := range ns {
			sortNodes(n.Children)
		}
	}
	sortNodes(root.Children)
	return root.Children
}
