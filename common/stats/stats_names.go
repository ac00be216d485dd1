package stats

/*
This file defines all the metrics being collected. As new metrics are added please follow this pattern.
*/

const (
	/************************* ELMdb client metrics **************************/
	/*
		number of remote calls attempted (one per invocation, scoped per operation as well)
	*/
	ElmdbCallCounter = "calls"

	/*
		number of calls answered with a SOAP fault
	*/
	ElmdbFaultCounter = "faults"

	/*
		number of calls that failed for any reason other than a fault (transport, HTTP status, decoding)
	*/
	ElmdbErrorCounter = "errors"

	/*
		number of successful calls that returned no record
	*/
	ElmdbEmptyResponseCounter = "emptyResponses"

	/*
		number of records decoded from responses
	*/
	ElmdbRecordCounter = "records"

	/*
		time from sending the request to decoding the response, including faults and errors
	*/
	ElmdbCallLatency_ms = "callLatency_ms"
)
