/*

Process of compilation

Formula Text ->
	parse ->
Abstract Syntax Tree (ast) ->        (optional, Compile skips it)
	lower ->
Value Table (ir) ->
	emit ->
Program (back) ->
	link -> Func(re, im)
	render -> Go source

*/
package compiler
