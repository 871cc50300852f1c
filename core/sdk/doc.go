// Package sdk resolves which SDK a module binds to.
//
// Resolution is an ordered list of strategies evaluated until one is
// decisive. JVM modules try an explicit jdkHome override, then the project
// SDK, then the first JDK. Other platforms try the first Kotlin SDK, then the
// SDK of the first sibling module bound to a Kotlin SDK.
//
// The Decision tells the caller whether to assign the SDK explicitly or to
// mark the module as inheriting the project SDK; a candidate equal to the
// project SDK is always inherited.
package sdk
