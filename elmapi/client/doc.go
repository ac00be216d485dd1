package client

// client provides typed access to the ELM database service. It is used by the
// elmdb command line binary to issue one SOAP request per invocation.
