/*

Package base provides base functions for cancerdata.

The base functions include:

* Random Generator (numpy compatible sampling)

* CSV Reader

*/
package base
