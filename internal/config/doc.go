// Package config provides configuration management for mergelist.
//
// A configuration describes one screen: an ordered list of blocks, each of
// which becomes one provider of the merged list. Configuration is loaded from
// YAML files and merged in layers, later layers overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (embedded in binary)
//     - The sample screen: a header, a sectioned character list and a hidden footer
//
//  2. User Configuration (~/.config/mergelist/config.yaml)
//
//  3. Project Configuration (./.mergelist/config.yaml)
//
// A single file (or a directory holding config.yaml) can be given instead with
// --config; it is merged over the defaults only.
//
// # Configuration Structure
//
//	settings:
//	  logLevel: debug
//	  darkMode: true
//
//	screen:
//	  title: "Crew"
//	  blocks:
//	    - name: header
//	      type: header
//	      lines: ["On duty"]
//	    - name: crew
//	      type: list
//	      sectioned: true
//	      sorted: true
//	      items: ["Ada", "Alan", "Grace"]
//	    - name: footer
//	      type: footer
//	      lines: ["end of list"]
//	      selectable: true
//	      active: false
//
// # Merging Behavior
//
// Blocks are matched by name. A block in a later layer replaces the block of the
// same name in place, keeping its position; blocks with new names are appended.
// Scalar settings are overridden only when set in the later layer.
package config
