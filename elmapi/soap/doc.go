/*
Package soap is a small SOAP 1.1 RPC codec and HTTP caller.

Requests are encoded rpc style with untyped, named parameters and no root
attribute. The first non-Fault element of a response Body is decoded into a
caller supplied value; a Fault element is returned as a *Fault error.
*/
package soap
