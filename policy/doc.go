// Package policy provides optional declarative rules that can be applied on
// top of a running dispatch core – for example to block pointer-device
// commands on shared infrastructure or to require interactive approval for
// session creation.
package policy
