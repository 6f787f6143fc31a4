/*
Package session provides the interactive front of the simulator.

A Session holds a reference to one immutable Simulator and exposes the menu
commands as plain methods that take user input and return formatted output.
There is no ambient state: several sessions may share the same Simulator.

A Runner drives a Session over an io.Reader/io.Writer pair, printing the menu,
reading commands and sequences line by line until "0" or end of input.
*/
package session
