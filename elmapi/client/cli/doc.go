/*
Package cli provides the command line front end of the ELM database client.
One selector flag picks the remote operation, its value (or standard input,
when the value is "-") becomes the operation's parameter, and the response is
printed through elmapi/render. The endpoint is resolved via a chain of
Resolvers and reached via a Dialer (common/dialer).
*/
package cli
